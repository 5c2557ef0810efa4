package version

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewCommand creates a version command for a consumer CLI.
// outputFormat is an optional pointer to the CLI's global output
// format flag; when it points at "json" the info is printed as JSON,
// otherwise as one line of text.
func NewCommand(info *Info, outputFormat *string) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if quiet {
				fmt.Fprintln(out, info.Version)
				return nil
			}
			if outputFormat != nil && *outputFormat == "json" {
				encoded, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal version info: %w", err)
				}
				fmt.Fprintln(out, string(encoded))
				return nil
			}
			fmt.Fprintln(out, info.String())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the version number")
	return cmd
}
