package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/galleydoc/galley"
	"github.com/galleydoc/galley/extract"
	"github.com/galleydoc/galley/format"
)

var batchCmd = &cobra.Command{
	Use:   "batch INPUT_DIR",
	Short: "Batch convert all documents in a directory",
	Long: `Batch finds every supported document under a directory and converts
each one, preserving the relative directory structure under --out-dir.
Files convert concurrently; --workers bounds the parallelism.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(cmd, args[0])
	},
}

func init() {
	addConversionFlags(batchCmd)
	batchCmd.Flags().String("out-dir", "", "output directory (required)")
	batchCmd.Flags().Bool("recursive", false, "process subdirectories")
	batchCmd.Flags().Bool("overwrite", false, "overwrite existing files")
	batchCmd.Flags().Int("workers", 4, "number of concurrent conversions")
	batchCmd.Flags().Bool("json", false, "machine-readable JSON output")
	_ = batchCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(batchCmd)
}

// batchReport aggregates per-file reports for machine-readable output.
type batchReport struct {
	Files   []convertReport `json:"files"`
	Success int             `json:"success"`
	Failed  int             `json:"failed"`
}

// findInputs collects candidate document files under dir, sorted for
// deterministic processing order.
func findInputs(dir string, recursive bool) ([]string, error) {
	var files []string

	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && format.Detect(path) != format.Unknown {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && format.Detect(e.Name()) != format.Unknown {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func runBatch(cmd *cobra.Command, inputDir string) error {
	opts := optionsFromFlags(cmd)
	quiet := flagBool(cmd, "quiet")
	verbose := flagBool(cmd, "verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	outDir, _ := cmd.Flags().GetString("out-dir")
	recursive, _ := cmd.Flags().GetBool("recursive")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	workers, _ := cmd.Flags().GetInt("workers")
	if workers < 1 {
		workers = 1
	}

	files, err := findInputs(inputDir, recursive)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !quiet {
			fmt.Fprintln(os.Stderr, "No supported document files found.")
		}
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	registry := extract.NewRegistry()

	type job struct {
		input  string
		output string
	}

	var jobs []job
	for _, file := range files {
		rel, err := filepath.Rel(inputDir, file)
		if err != nil {
			rel = filepath.Base(file)
		}
		out := filepath.Join(outDir, outputPath(rel))

		if _, statErr := os.Stat(out); statErr == nil && !overwrite {
			if verbose && !quiet {
				fmt.Fprintf(os.Stderr, "Skipping (exists): %s\n", file)
			}
			continue
		}
		jobs = append(jobs, job{input: file, output: out})
	}

	reports := make([]convertReport, len(jobs))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(slot int, j job) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			report := convertReport{
				Source:   j.input,
				Output:   j.output,
				Warnings: []string{},
			}

			result, err := convertBatchFile(registry, j.input, j.output, opts)
			report.ExitCode = exitCodeFor(err)
			if result != nil {
				report.Warnings = result.Warnings
				report.Chars = len(result.Markdown)
				report.Pages = result.PageCount
			}
			if err != nil && !quiet && !jsonOutput {
				fmt.Fprintf(os.Stderr, "  Warning (%s): %v\n", j.input, err)
			}

			reports[slot] = report
		}(i, j)
	}
	wg.Wait()

	success, failed := 0, 0
	for _, r := range reports {
		if r.ExitCode == exitSuccess {
			success++
			if !quiet && !jsonOutput {
				fmt.Printf("  -> %s\n", r.Output)
			}
		} else {
			failed++
		}
	}

	if jsonOutput {
		if err := printJSON(batchReport{Files: reports, Success: success, Failed: failed}); err != nil {
			return err
		}
	} else if !quiet {
		fmt.Printf("\nDone: %d converted, %d failed.\n", success, failed)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d conversions failed", galley.ErrExtractionFailed, failed, len(jobs))
	}
	return nil
}

// convertBatchFile converts one file and writes the output in place.
func convertBatchFile(registry *extract.Registry, input, output string, opts galley.Options) (*galley.Result, error) {
	result, err := convertFile(registry, input, opts)
	if err != nil {
		return result, err
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return result, err
	}
	if err := os.WriteFile(output, []byte(result.Markdown), 0o644); err != nil {
		return result, err
	}
	return result, nil
}
