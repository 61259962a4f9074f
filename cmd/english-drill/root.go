package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "english-drill",
	Short: "Daily English practice from BBC 6 Minute English and TOEFL links",
	Long: `english-drill - daily English practice material

Downloads a random BBC Learning English "6 Minute English" episode
(audio + worksheet PDF), collects TOEFL reading and listening practice
links, and writes a practice note into a notes vault.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $ENGLISH_DRILL_CONFIG or ~/.bbccli/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("english-drill {{.Version}}\n")
}
