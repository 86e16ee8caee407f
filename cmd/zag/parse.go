package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zag/internal/diagfmt"
	"zag/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.zag",
	Short: "Parse a zag source file",
	Long:  `Parse builds the syntax tree of a zag source file and dumps it`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Bool("no-tree", false, "report diagnostics only, skip the tree dump")
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	noTree, err := cmd.Flags().GetBool("no-tree")
	if err != nil {
		return fmt.Errorf("failed to get no-tree flag: %w", err)
	}

	result, err := driver.ParseFile(args[0], s.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 && !s.quiet {
		result.Bag.Sort()
		opts := diagfmt.PrettyOpts{Color: s.useColor(os.Stderr), ShowNotes: true}
		if err := diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts); err != nil {
			return err
		}
	}
	if noTree {
		if result.Bag.HasErrors() {
			return fmt.Errorf("%d syntax errors", result.Bag.Len())
		}
		return nil
	}

	switch format {
	case "pretty":
		return diagfmt.TreePretty(cmd.OutOrStdout(), result.Tree, result.FileSet, result.File.ID)
	case "json":
		return diagfmt.TreeJSON(cmd.OutOrStdout(), result.Tree, result.FileSet, result.File.ID)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
