package cmd

import (
	"strings"

	"github.com/sigmaterm/sigmaterm/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "sigmaterm",
	Short: "A multi-pane terminal with per-pane command history",
	Long: `Sigmaterm runs up to six shell sessions side by side in one terminal
window. Each pane has its own accent color, local line editing with
history, and automatic passthrough for full-screen programs.`,
	RunE: runRoot,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/sigmaterm/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().String("shell", "", "shell to spawn in each pane (default $SHELL)")
	_ = viper.BindPFlag("shell.command", rootCmd.Flags().Lookup("shell"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/sigmaterm")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SIGMATERM")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SIGMATERM_MUX_MAX_PANES for mux.max_panes
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
