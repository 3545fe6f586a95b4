package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fahrwerk/bikesim/internal/application/simulation/commands"
	"github.com/fahrwerk/bikesim/internal/application/simulation/queries"
)

// NewNewCommand creates the new command
func NewNewCommand() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new simulation run",
		Long: `Start a new simulation run under the given session name.

The company begins with a starting balance, a seeded home warehouse, and a
small workforce. Pass an explicit seed to make defect rolls and demand
draws reproducible across runs.

Examples:
  bikesim new --session mygame
  bikesim new --session mygame --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			return runNew(sessionName, seed)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for the run (0 picks a time-based seed)")

	return cmd
}

func runNew(name string, seed int64) error {
	rt, err := newRuntime(configPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	response, err := rt.Mediator.Send(rt.Context(), &commands.NewSessionCommand{
		Name: name,
		Seed: seed,
	})
	if err != nil {
		return err
	}
	result := response.(*commands.NewSessionResponse)

	fmt.Printf("Session %q created (id %s)\n", result.Name, result.SessionID)
	fmt.Printf("Month:   %d\n", result.Month)
	fmt.Printf("Balance: %s\n", formatMoney(result.Balance))
	return nil
}

// NewSessionsCommand creates the sessions command
func NewSessionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List stored simulation runs",
		Long: `List all stored simulation runs with their month, balance, and status.

Examples:
  bikesim sessions`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessions()
		},
	}
}

func runSessions() error {
	rt, err := newRuntime(configPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	response, err := rt.Mediator.Send(rt.Context(), &queries.ListSessionsQuery{})
	if err != nil {
		return err
	}
	result := response.(*queries.ListSessionsResponse)

	if len(result.Sessions) == 0 {
		fmt.Println("No sessions found. Start one with: bikesim new --session <name>")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Session", "Month", "Balance", "Status", "Updated"}),
	)
	for _, s := range result.Sessions {
		table.Append([]string{
			s.Name,
			fmt.Sprintf("%d", s.Month),
			formatMoney(s.Balance),
			string(s.Status),
			s.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	table.Render()
	return nil
}

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete a stored simulation run",
		Long: `Delete a stored simulation run and its monthly reports.

Examples:
  bikesim delete --session mygame`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			return runDelete(sessionName)
		},
	}
}

func runDelete(name string) error {
	rt, err := newRuntime(configPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	response, err := rt.Mediator.Send(rt.Context(), &commands.DeleteSessionCommand{
		Session: name,
	})
	if err != nil {
		return err
	}
	result := response.(*commands.DeleteSessionResponse)

	fmt.Printf("Session %q deleted\n", result.Deleted)
	return nil
}
