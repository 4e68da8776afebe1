package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var dialCmd = &cobra.Command{
	Use:   "dial <from> <to>",
	Short: "Compute what to dial from one number to reach another",
	Long: `Print the digits to dial from the caller's number to reach the callee.
Calls within one country are dialed domestically; otherwise the caller's
international prefix, the callee's country code, and the callee's number
are joined with spaces.`,
	Example: `  phonenumber dial 075586105638 23154678 --to-region hk
  phonenumber dial 23154678 075586105638 --from-region hk --to-region cn`,
	Args: cobra.ExactArgs(2),
	RunE: runDial,
}

func init() {
	dialCmd.Flags().String("from-region", "", "Caller region: cn or hk (default from config)")
	dialCmd.Flags().String("to-region", "", "Callee region: cn or hk (default from config)")
	dialCmd.Flags().Bool("fold-width", true, "Map fullwidth digits to ASCII before parsing")
}

func runDial(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	fromFlag, _ := cmd.Flags().GetString("from-region")
	toFlag, _ := cmd.Flags().GetString("to-region")

	fromRegion, err := resolveRegion(e, fromFlag)
	if err != nil {
		return err
	}
	toRegion, err := resolveRegion(e, toFlag)
	if err != nil {
		return err
	}
	from, err := parseNumber(e, fromRegion, args[0])
	if err != nil {
		return err
	}
	to, err := parseNumber(e, toRegion, args[1])
	if err != nil {
		return err
	}

	dial := from.DialNumber(to)
	e.logger.Debug("computed dial string", "from", from.ShowNumber(), "to", to.ShowNumber(), "dial", dial)

	if e.format == "json" {
		return json.NewEncoder(e.out).Encode(map[string]any{
			"from": newRecord(args[0], from),
			"to":   newRecord(args[1], to),
			"dial": dial,
		})
	}
	fmt.Fprintln(e.out, dial)
	return nil
}
