package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yurihaia/ycf/internal/driver"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] file.ycf",
	Short: "Convert a YCF document to another format",
	Long:  `Convert re-encodes the value tree of a document as JSON or msgpack`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().String("to", "json", "target format (json|msgpack)")
	convertCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	target, err := cmd.Flags().GetString("to")
	if err != nil {
		return err
	}
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	out, err := driver.Convert(args[0], driver.ConvertFormat(target))
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	if outPath == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}
