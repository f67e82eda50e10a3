package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/kiroscore/internal/engine"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the Kiroween competition categories",
	Run: func(cmd *cobra.Command, args []string) {
		for _, cat := range engine.AllCategories {
			fmt.Printf("%-16s %s\n", cat, cat.DisplayName())
			fmt.Printf("                 %s\n", cat.Description())
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
