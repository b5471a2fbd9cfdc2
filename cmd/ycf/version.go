package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Yurihaia/ycf/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var (
	versionFormat   string
	versionShowFull bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show every recorded bit of build metadata")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show ycf build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch strings.ToLower(versionFormat) {
		case "pretty":
			renderVersionPretty(cmd.OutOrStdout(), versionShowFull)
			return nil
		case "json":
			return renderVersionJSON(cmd.OutOrStdout(), versionShowFull)
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}

func renderVersionPretty(out io.Writer, full bool) {
	if full {
		fmt.Fprintf(out, "ycf %s\n", version.Full())
		return
	}
	fmt.Fprintf(out, "ycf %s\n", version.Colored())
}

func renderVersionJSON(out io.Writer, full bool) error {
	payload := versionPayload{
		Tool:    "ycf",
		Version: strings.TrimSpace(version.Version),
	}
	if full {
		payload.GitCommit = strings.TrimSpace(version.GitCommit)
		payload.BuildDate = strings.TrimSpace(version.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
