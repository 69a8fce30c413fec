package commands

import (
	"fmt"

	"github.com/carlmjohnson/versioninfo"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// VersionInfo describes the running build.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// newVersionInfo fills values the linker did not set from the module build info.
func newVersionInfo(version, commit, date string) VersionInfo {
	if version == "" || version == "dev" {
		version = versioninfo.Short()
	}

	if commit == "" || commit == "none" {
		commit = versioninfo.Revision
	}

	if date == "" || date == "unknown" {
		if !versioninfo.LastCommit.IsZero() {
			date = versioninfo.LastCommit.UTC().Format("2006-01-02T15:04:05Z")
		}
	}

	return VersionInfo{Version: version, Commit: commit, Built: date}
}

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the DNSimple CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := newVersionInfo(version, commit, date)

			switch viper.GetString(keyOutput) {
			case OutputFormatJSON, OutputFormatYAML:
				return encode(cmd.OutOrStdout(), info)
			default:
				table := tablewriter.NewWriter(cmd.OutOrStdout())
				table.Header("Property", "Value")
				_ = table.Append("Version", info.Version)
				_ = table.Append("Commit", info.Commit)
				_ = table.Append("Built", info.Built)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
