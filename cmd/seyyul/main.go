package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "seyyul",
	Short: "Tamil classical verse matcher and text analyzer",
	Long: "seyyul matches Tamil input against classical corpora " +
		"(திருக்குறள், கம்பராமாயணம், ஆத்திசூடி), classifies modern " +
		"sentences and composes a meaning with sentiment.",
	SilenceUsage: true,
}

func main() {
	// .env is optional; only the Gemini enhancer needs anything from it.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a thresholds YAML file")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
