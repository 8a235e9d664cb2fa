package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yosssi/gohtml"

	"github.com/jmylchreest/htmlwash/internal/logger"
	"github.com/jmylchreest/htmlwash/pkg/policy"
	"github.com/jmylchreest/htmlwash/pkg/washer"
)

var washCmd = &cobra.Command{
	Use:   "wash [file]",
	Short: "Sanitize HTML from a file or stdin",
	Long: `Wash sanitizes HTML under a policy and writes the result to stdout
(or a file). The policy comes from --setup, --preset, or defaults to
the standard preset. An invalid policy does not fail the wash: it is
reported as a warning and the standard preset is used instead.

Examples:
  htmlwash wash page.html
  htmlwash wash -s policy.yaml -o clean.html page.html
  cat page.html | htmlwash wash --preset minimal --pretty`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWash,
}

func init() {
	rootCmd.AddCommand(washCmd)

	flags := washCmd.Flags()
	flags.StringP("setup", "s", "", "path to a policy YAML file")
	flags.String("preset", "", "built-in policy: minimal, standard, permissive")
	flags.StringP("title", "t", "", "inject a <title> when output has none")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.Bool("pretty", false, "indent the output HTML")
}

func runWash(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	setupPath, _ := flags.GetString("setup")
	presetName, _ := flags.GetString("preset")
	if setupPath != "" && presetName != "" {
		logError("--setup and --preset are mutually exclusive")
		return fmt.Errorf("conflicting policy flags")
	}

	var setup string
	switch {
	case setupPath != "":
		data, err := os.ReadFile(setupPath)
		if err != nil {
			logError("reading policy file: %v", err)
			return err
		}
		setup = string(data)
	case presetName != "":
		p, ok := policy.Preset(presetName)
		if !ok {
			logError("unknown preset %q (available: %s)", presetName, strings.Join(policy.PresetNames(), ", "))
			return fmt.Errorf("unknown preset %q", presetName)
		}
		setup = p
	}

	input, err := readInput(args)
	if err != nil {
		logError("reading input: %v", err)
		return err
	}

	title, _ := flags.GetString("title")
	result := washer.Wash(input, &washer.Options{Setup: setup, Title: title})
	for _, w := range result.Warnings {
		logger.Warn(w)
	}

	out := result.HTML
	if pretty, _ := flags.GetBool("pretty"); pretty {
		out = gohtml.Format(out)
	}

	return writeOutput(cmd, out)
}

// readInput reads the positional file argument, or stdin when absent.
func readInput(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		return string(data), err
	}
	data, err := io.ReadAll(os.Stdin)
	return string(data), err
}

// writeOutput writes s (newline-terminated) to the -o file, or stdout.
func writeOutput(cmd *cobra.Command, s string) error {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
			logError("writing output: %v", err)
			return err
		}
		return nil
	}
	fmt.Print(s)
	return nil
}
