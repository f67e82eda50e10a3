package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/kiroscore/internal/ai"
	"github.com/dotcommander/kiroscore/internal/analyzer"
	"github.com/dotcommander/kiroscore/internal/config"
)

var (
	rootPath     string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	useAI        bool
)

var rootCmd = &cobra.Command{
	Use:   "kiroscore [glob...]",
	Short: "Kiroscore - rule-based scoring for Kiroween hackathon submissions",
	Long: `Kiroscore evaluates free-text hackathon submissions against the four
Kiroween categories and the three judged criteria, producing fit scores,
justifications, and improvement suggestions.

By default, kiroscore scans the root directory for submission files
(YAML or JSON) and scores each one. Pass globs to narrow the set, or use
'kiroscore serve' to expose the scorer as an HTTP API.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Directory to scan for submission files (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (stdout if empty)")
	rootCmd.PersistentFlags().BoolVar(&useAI, "ai", false, "Use the model-based analysis pathway with rule-based fallback")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("ai.enabled", rootCmd.PersistentFlags().Lookup("ai"))
}

func initConfig() {
	configPaths := []string{".kiroscorerc.json", ".kiroscorerc.yaml", ".kiroscorerc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}

// buildAnalyzer selects the analysis pathway. The AI pathway always carries
// the rule-based engine as a fallback.
func buildAnalyzer(cfg *config.Config) (analyzer.Analyzer, string) {
	rule := analyzer.NewRuleBased()
	if !cfg.AI.Enabled {
		return rule, "rules"
	}

	client, err := ai.NewClient(cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; falling back to rule-based scoring\n", err)
		return rule, "rules"
	}
	return analyzer.WithFallback(client, rule), "ai"
}
