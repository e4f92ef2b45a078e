package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbelyaev/caselens/internal/precedent"
)

// precedentsCmd lists the built-in comparable case corpus
var precedentsCmd = &cobra.Command{
	Use:   "precedents",
	Short: "List the built-in comparable case corpus",
	Long: `Display the precedent cases that analyses are compared against,
with their outcomes, evidence strengths and strategies.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range precedent.Corpus() {
			fmt.Printf("%s\n", c.Title)
			fmt.Printf("  Outcome:  %s\n", c.Outcome)
			fmt.Printf("  Evidence: %s\n", c.EvidenceStrength)
			fmt.Printf("  Strategy: %s\n", c.StrategyUsed)
			fmt.Printf("  Factors:  %s\n", strings.Join(c.KeyFactors, ", "))
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(precedentsCmd)
}
