package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Yurihaia/ycf/internal/config"
	"github.com/Yurihaia/ycf/internal/diagfmt"
	"github.com/Yurihaia/ycf/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <path>",
	Short: "Check YCF documents for syntax errors",
	Long:  `Check parses a document, or every document under a directory, and reports syntax errors`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("max-depth", 0, "nesting depth limit (0 = from config or default)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	path := args[0]

	maxDepth, err := cmd.Flags().GetInt("max-depth")
	if err != nil {
		return err
	}
	if maxDepth == 0 {
		cfg, _, err := config.Discover(startDirFor(path))
		if err != nil {
			return err
		}
		maxDepth = cfg.Check.MaxDepth
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		res, err := driver.CheckFile(path, maxDepth)
		if err != nil {
			return err
		}
		if res.ParseErr != nil {
			diagfmt.Pretty(os.Stderr, res.File, res.ParseErr, opts)
			return fmt.Errorf("check: %s has errors", path)
		}
		if !quiet {
			fmt.Fprintf(os.Stdout, "ok %s\n", path)
		}
		return nil
	}

	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}

	results, err := driver.CheckDir(cmd.Context(), path, jobs, maxDepth)
	if err != nil {
		return err
	}

	var bad int
	for _, res := range results {
		switch {
		case res.LoadErr != nil:
			bad++
			fmt.Fprintf(os.Stderr, "check: %s: %v\n", res.Path, res.LoadErr)
		case res.ParseErr != nil:
			bad++
			diagfmt.Pretty(os.Stderr, res.File, res.ParseErr, opts)
		default:
			if !quiet {
				fmt.Fprintf(os.Stdout, "ok %s\n", res.Path)
			}
		}
	}
	if bad > 0 {
		return fmt.Errorf("check: %d of %d files have errors", bad, len(results))
	}
	return nil
}

// startDirFor выбирает директорию, от которой искать ycf.toml
func startDirFor(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
