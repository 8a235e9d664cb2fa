// Package commands implements the CLI commands for htmlwash.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/htmlwash/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "htmlwash",
	Short: "Sanitize untrusted HTML under a declarative policy",
	Long: `Htmlwash reduces untrusted HTML to a whitelisted subset of tags,
attributes, and classes. Policies are small YAML documents validated
against a strict schema; three built-in presets (minimal, standard,
permissive) work out of the box. Script, style, iframe, and friends are
always removed, whatever the policy says.

Examples:
  # Sanitize a file under the standard preset
  htmlwash wash page.html

  # Sanitize stdin under a custom policy
  cat page.html | htmlwash wash -s policy.yaml

  # Start from the permissive preset and inject a title
  htmlwash wash page.html --preset permissive -t "My Page"

  # See what a document uses before writing a policy for it
  htmlwash inspect page.html`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.htmlwash.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("log_json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".htmlwash")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("HTMLWASH")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
