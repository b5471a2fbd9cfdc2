package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Yurihaia/ycf/internal/config"
	"github.com/Yurihaia/ycf/internal/diagfmt"
	"github.com/Yurihaia/ycf/internal/driver"
	"github.com/Yurihaia/ycf/internal/format"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path>",
	Short: "Format YCF documents",
	Long:  `Fmt normalizes the layout of a document, or of every document under a directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("write", false, "rewrite changed files in place")
	fmtCmd.Flags().Bool("check", false, "exit non-zero when files need formatting")
	fmtCmd.Flags().Int("indent", 0, "indent width (0 = from config or default)")
	fmtCmd.Flags().Bool("tabs", false, "indent with tabs")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	path := args[0]

	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	if write && check {
		return fmt.Errorf("fmt: --write cannot be used with --check")
	}

	opt, err := fmtOptions(cmd, path)
	if err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	popts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		res, err := driver.FormatFile(path, opt, write)
		if err != nil {
			return err
		}
		if res.ParseErr != nil {
			diagfmt.Pretty(os.Stderr, res.File, res.ParseErr, popts)
			return fmt.Errorf("fmt: %s has errors", path)
		}
		if !write && !check {
			_, err := os.Stdout.Write(res.Output)
			return err
		}
		if check && res.Changed {
			if !quiet {
				fmt.Fprintln(os.Stdout, res.Path)
			}
			return fmt.Errorf("fmt: formatting changes required")
		}
		if write && res.Changed && !quiet {
			fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
		return nil
	}

	// Директорию без --write и --check печатать в stdout бессмысленно
	if !write && !check {
		return fmt.Errorf("fmt: directory input requires --write or --check")
	}

	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}

	results, err := driver.FormatDir(cmd.Context(), path, jobs, opt, write)
	if err != nil {
		return err
	}

	var bad, changed int
	for _, res := range results {
		if res.ParseErr != nil {
			bad++
			diagfmt.Pretty(os.Stderr, res.File, res.ParseErr, popts)
			continue
		}
		if res.Changed {
			changed++
			if !quiet {
				if write {
					fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
				} else {
					fmt.Fprintln(os.Stdout, res.Path)
				}
			}
		}
	}
	if bad > 0 {
		return fmt.Errorf("fmt: %d of %d files have errors", bad, len(results))
	}
	if check && changed > 0 {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

// fmtOptions собирает опции печати из флагов и ycf.toml
func fmtOptions(cmd *cobra.Command, path string) (format.Options, error) {
	indent, err := cmd.Flags().GetInt("indent")
	if err != nil {
		return format.Options{}, err
	}
	tabs, err := cmd.Flags().GetBool("tabs")
	if err != nil {
		return format.Options{}, err
	}

	cfg, _, err := config.Discover(startDirFor(path))
	if err != nil {
		return format.Options{}, err
	}

	opt := format.Options{
		IndentWidth: cfg.Fmt.IndentWidth,
		UseTabs:     cfg.Fmt.UseTabs,
	}
	if indent > 0 {
		opt.IndentWidth = indent
	}
	if cmd.Flags().Changed("tabs") {
		opt.UseTabs = tabs
	}
	return opt, nil
}
