package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/htmlwash/pkg/policy"
)

var presetsCmd = &cobra.Command{
	Use:   "presets [name]",
	Short: "List built-in policies or print one",
	Long: `Without arguments, presets lists the built-in policy names. With a
name, it prints that policy's YAML, which is a useful starting point
for a custom policy:

  htmlwash presets standard > policy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, name := range policy.PresetNames() {
			fmt.Println(name)
		}
		return nil
	}

	p, ok := policy.Preset(args[0])
	if !ok {
		logError("unknown preset %q (available: %s)", args[0], strings.Join(policy.PresetNames(), ", "))
		return fmt.Errorf("unknown preset %q", args[0])
	}
	fmt.Print(p)
	return nil
}
