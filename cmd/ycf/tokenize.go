package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yurihaia/ycf/internal/diagfmt"
	"github.com/Yurihaia/ycf/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.ycf",
	Short: "Tokenize a YCF document",
	Long:  `Tokenize breaks a YCF document into its constituent tokens, trivia included`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(filePath)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Parser, result.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Parser, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
