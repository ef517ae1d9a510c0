package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/galleydoc/galley"
	"github.com/galleydoc/galley/extract"
)

var convertCmd = &cobra.Command{
	Use:   "convert INPUT_FILE",
	Short: "Convert a single document to Markdown",
	Long: `Convert reads one extracted document interchange file and writes the
normalized Markdown next to it (or to the path given with --output).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0])
	},
}

func init() {
	addConversionFlags(convertCmd)
	convertCmd.Flags().StringP("output", "o", "", "output .md file path")
	convertCmd.Flags().Bool("overwrite", false, "overwrite existing output file")
	convertCmd.Flags().Bool("json", false, "machine-readable JSON output")

	rootCmd.AddCommand(convertCmd)
}

// addConversionFlags registers the flags shared by convert and batch.
func addConversionFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("clean", false, "normalize whitespace, reflow paragraphs, fix hyphenation")
	cmd.Flags().Bool("frontmatter", false, "add YAML frontmatter with source metadata")
	cmd.Flags().Bool("page-labels", false, "add ## Page N headings")
	cmd.Flags().Bool("extract-tables", false, "render detected tables as GitHub-flavored Markdown")
	cmd.Flags().Int("max-chars", 0, "truncate output at N characters (0 = no limit)")
	cmd.Flags().Bool("quiet", false, "suppress warnings")
	cmd.Flags().Bool("verbose", false, "show detailed progress")
}

// flagBool resolves a boolean flag, falling back to the viper config
// value when the flag was not set on the command line.
func flagBool(cmd *cobra.Command, name string) bool {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetBool(name)
	}
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func flagInt(cmd *cobra.Command, name string) int {
	if !cmd.Flags().Changed(name) && viper.IsSet(name) {
		return viper.GetInt(name)
	}
	v, _ := cmd.Flags().GetInt(name)
	return v
}

func optionsFromFlags(cmd *cobra.Command) galley.Options {
	return galley.Options{
		Clean:         flagBool(cmd, "clean"),
		Frontmatter:   flagBool(cmd, "frontmatter"),
		PageLabels:    flagBool(cmd, "page-labels"),
		ExtractTables: flagBool(cmd, "extract-tables"),
		MaxChars:      flagInt(cmd, "max-chars"),
	}
}

// convertReport is the machine-readable summary of one conversion.
type convertReport struct {
	Source   string   `json:"source"`
	Output   string   `json:"output,omitempty"`
	ExitCode int      `json:"exit_code"`
	Warnings []string `json:"warnings"`
	Chars    int      `json:"chars"`
	Pages    int      `json:"pages"`
}

// convertFile runs the full pipeline for one input file and returns the
// conversion result. Warnings from extraction errors come back through
// the error; result warnings through the Result.
func convertFile(registry *extract.Registry, path string, opts galley.Options) (*galley.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := registry.Extract(data, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// The interchange document may carry no source name of its own
	if doc.Source == "" {
		doc.Source = filepath.Base(path)
	}

	return galley.Convert(doc, opts)
}

func runConvert(cmd *cobra.Command, input string) error {
	opts := optionsFromFlags(cmd)
	quiet := flagBool(cmd, "quiet")
	verbose := flagBool(cmd, "verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, "Converting: %s\n", input)
	}

	result, err := convertFile(extract.NewRegistry(), input, opts)

	if jsonOutput {
		report := convertReport{
			Source:   input,
			ExitCode: exitCodeFor(err),
			Warnings: []string{},
		}
		if result != nil {
			report.Warnings = result.Warnings
			report.Chars = len(result.Markdown)
			report.Pages = result.PageCount
		}
		if err := printJSON(report); err != nil {
			return err
		}
		return err
	}

	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = outputPath(input)
	}

	overwrite, _ := cmd.Flags().GetBool("overwrite")
	if _, statErr := os.Stat(output); statErr == nil && !overwrite {
		return fmt.Errorf("%s already exists, use --overwrite to replace", output)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(output, []byte(result.Markdown), 0o644); err != nil {
		return err
	}

	if !quiet {
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
		fmt.Printf("Converted: %s -> %s\n", input, output)
	}

	return nil
}

// outputPath swaps the input extension for .md.
func outputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".md"
}

func printJSON(v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
