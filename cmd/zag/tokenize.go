package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zag/internal/diagfmt"
	"zag/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.zag",
	Short: "Tokenize a zag source file",
	Long:  `Tokenize breaks a zag source file into its token stream, comments included`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(args[0], s.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.Len() > 0 && !s.quiet {
		opts := diagfmt.PrettyOpts{Color: s.useColor(os.Stderr), ShowNotes: true}
		if err := diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts); err != nil {
			return err
		}
	}

	switch format {
	case "pretty":
		return diagfmt.TokensPretty(cmd.OutOrStdout(), result.FileSet, result.File.ID, result.Tokens)
	case "json":
		return diagfmt.TokensJSON(cmd.OutOrStdout(), result.FileSet, result.File.ID, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
