package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zag/internal/diag"
	"zag/internal/diagfmt"
	"zag/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path ...]",
	Short: "Check zag source files for syntax errors",
	Long: `Check parses every named file, walking directories for *.zag files.
Without arguments it checks the project include paths from zag.toml,
or the current directory when there is no manifest.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "parallel parse workers (0 uses all CPUs)")
	checkCmd.Flags().Bool("no-cache", false, "skip the on-disk result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	paths := args
	if len(paths) == 0 {
		if s.manifest != nil && len(s.manifest.Config.Check.Include) > 0 {
			paths = s.manifest.IncludePaths()
		} else {
			paths = []string{"."}
		}
	}
	files, err := driver.CollectFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !s.quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "no zag files found")
		}
		return nil
	}

	var cache *driver.DiskCache
	if !noCache {
		// Best effort; checking works without a cache directory.
		cache, _ = driver.OpenDiskCache("zag")
	}

	fileSet, results, err := driver.CheckMany(cmd.Context(), files, driver.CheckOptions{
		MaxDiagnostics: s.maxDiagnostics,
		Jobs:           jobs,
		Cache:          cache,
	})
	if err != nil {
		return err
	}

	// Merge grows the limit as it goes, so the cap stays per-file.
	total := diag.NewBag(0)
	for _, res := range results {
		total.Merge(res.Bag)
	}
	total.Sort()

	if total.Len() > 0 {
		switch format {
		case "pretty":
			opts := diagfmt.PrettyOpts{Color: s.useColor(os.Stderr), ShowNotes: true}
			if err := diagfmt.Pretty(os.Stderr, total, fileSet, opts); err != nil {
				return err
			}
		case "json":
			opts := diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}
			if err := diagfmt.JSON(cmd.OutOrStdout(), total, fileSet, opts); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	if total.HasErrors() {
		return fmt.Errorf("%d files checked, %d diagnostics", len(results), total.Len())
	}
	if !s.quiet && format == "pretty" {
		fmt.Fprintf(cmd.OutOrStdout(), "%d files checked, no errors\n", len(results))
	}
	return nil
}
