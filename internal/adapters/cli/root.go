package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath  string
	sessionName string
	verbose     bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bikesim",
		Short: "bikesim - a turn-based bicycle manufacturing simulation",
		Long: `bikesim runs a turn-based bicycle manufacturing business: buy parts,
build bicycles, move stock between warehouses, ship to markets, and
survive the monthly bills.

Examples:
  bikesim new --session mygame --seed 42
  bikesim purchase --session mygame --line velotech_supplies:laufradsatz_standard:20
  bikesim produce --session mygame --line herrenrad:standard:10
  bikesim transfer --session mygame --line laufradsatz_standard:germany:france:5
  bikesim staff --session mygame --hire-skilled 1
  bikesim ship --session mygame --line herrenrad:standard:muenster:10
  bikesim close-month --session mygame
  bikesim report --session mygame
  bikesim ledger --session mygame --month 1`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in . or ./configs)")
	rootCmd.PersistentFlags().StringVarP(&sessionName, "session", "s", "",
		"Session name to operate on")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewNewCommand())
	rootCmd.AddCommand(NewSessionsCommand())
	rootCmd.AddCommand(NewDeleteCommand())
	rootCmd.AddCommand(NewPurchaseCommand())
	rootCmd.AddCommand(NewProduceCommand())
	rootCmd.AddCommand(NewTransferCommand())
	rootCmd.AddCommand(NewStaffCommand())
	rootCmd.AddCommand(NewShipCommand())
	rootCmd.AddCommand(NewCloseMonthCommand())
	rootCmd.AddCommand(NewReportCommand())
	rootCmd.AddCommand(NewLedgerCommand())
	rootCmd.AddCommand(NewCatalogCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
