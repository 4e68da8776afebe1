package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jlibs/phonenumber/internal/cli/ui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print phonenumber version",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		jsonOut, _ := cmd.Flags().GetBool("json")
		if jsonOut {
			json.NewEncoder(out).Encode(map[string]any{
				"version": buildVersion,
				"commit":  buildCommit,
				"date":    buildDate,
			})
			return
		}
		fmt.Fprintf(out, "%s phonenumber %s (commit: %s, built: %s)\n", ui.BrandSymbol, buildVersion, buildCommit, buildDate)
	},
}
