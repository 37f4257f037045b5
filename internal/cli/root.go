// Package cli implements the absqrtc command-line front-end: a thin
// wrapper that evaluates single operations on a + b·√c values supplied
// as structured flags. It deliberately accepts no free-form expressions.
package cli

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "absqrtc",
	Short: "Exact arithmetic on quadratic surds a + b·√c",
	Long: "A calculator for algebraic numbers of the form a + b·√c with exact rational\n" +
		"coefficients. Values are given as comma-separated triples \"a,b,c\" (or \"a,c\",\n" +
		"or just \"a\"), each slot a rational like 3, -5 or 1/2; the radicand must be a\n" +
		"non-negative integer. Results print in canonical form with a squarefree radicand.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("float", false, "also print the float64 projection")
}
