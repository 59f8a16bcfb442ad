// Package cli implements the cxcalc command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"github.com/npillmayer/cxcalc"
	"github.com/npillmayer/cxcalc/calculator"
	"github.com/npillmayer/cxcalc/cxcalc/ui/termui"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

const version = "0.1 experimental"

// defaultDigits is the number of decimal places of displayed values.
const defaultDigits = 6

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cxcalc",
	Short: "A calculator and grapher for complex numbers",
	Long: `Welcome to cxcalc V0.1 (experimental)

cxcalc evaluates expressions over complex numbers, such as

    (1+2i)^2 * exp(i*PI)

If called without a sub-command, cxcalc runs an interactive calculator in a
terminal REPL. Sub-commands evaluate expressions in batch-mode or sample
functions of z across the complex plane, writing tables, JSON or SVG.

`,
	Run: runCalculator,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by cxcalc.main().
func Execute() {
	rootCmd.AddCommand(evalCommand(), gridCommand(), contourCommand())
	if rootCmd.Execute() != nil {
		cxcalc.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().Int("digits", defaultDigits, "Number of decimal places to display")
	rootCmd.PersistentFlags().Bool("polar", false, "Display values in polar form")
	rootCmd.Flags().Bool("autosave", false, "Save every result as a variable")
}

func displayDigits() int32 {
	return int32(cxcalc.ConfigInt("digits", defaultDigits))
}

func runCalculator(cmd *cobra.Command, args []string) {
	tracing.Infof("cxcalc calculator called")
	autosave, _ := cmd.Flags().GetBool("autosave")
	polar, _ := cmd.Flags().GetBool("polar")
	session := calculator.NewSession(calculator.SaveResults(autosave), calculator.Polar(polar))
	calc := newCalcIntpr(session, displayDigits())
	calc.BaseREPL = termui.NewBaseREPL("cxcalc", version, locatePaths().HistoryFile(), calcStatements...)
	calc.Interpreter = calc
	calc.Helper = calcHelp
	calc.Prompt(true)
}
