package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fahrwerk/bikesim/internal/application/simulation/commands"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
)

// NewStaffCommand creates the staff command
func NewStaffCommand() *cobra.Command {
	var (
		hireSkilled   int
		fireSkilled   int
		hireUnskilled int
		fireUnskilled int
	)

	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Hire and fire workers",
		Long: `Hire and fire skilled and unskilled workers.

Headcounts never drop below zero. The monthly salary for the workforce
after the change is charged immediately.

Examples:
  bikesim staff --session mygame --hire-skilled 1
  bikesim staff --session mygame --hire-unskilled 2 --fire-skilled 1
  bikesim staff --session mygame`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			return runStaff(sessionName, simulation.StaffChange{
				HireSkilled:   hireSkilled,
				FireSkilled:   fireSkilled,
				HireUnskilled: hireUnskilled,
				FireUnskilled: fireUnskilled,
			})
		},
	}

	cmd.Flags().IntVar(&hireSkilled, "hire-skilled", 0, "Skilled workers to hire")
	cmd.Flags().IntVar(&fireSkilled, "fire-skilled", 0, "Skilled workers to fire")
	cmd.Flags().IntVar(&hireUnskilled, "hire-unskilled", 0, "Unskilled workers to hire")
	cmd.Flags().IntVar(&fireUnskilled, "fire-unskilled", 0, "Unskilled workers to fire")

	return cmd
}

func runStaff(session string, change simulation.StaffChange) error {
	rt, err := newRuntime(configPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	response, err := rt.Mediator.Send(rt.Context(), &commands.ManageStaffCommand{
		Session: session,
		Change:  change,
	})
	if err != nil {
		return err
	}
	result := response.(*commands.ManageStaffResponse)

	fmt.Printf("Skilled workers:   %d\n", result.Result.Skilled)
	fmt.Printf("Unskilled workers: %d\n", result.Result.Unskilled)
	fmt.Printf("Salaries charged:  %s\n", formatMoney(result.Result.TotalSalary))
	fmt.Printf("Balance:           %s\n", formatMoney(result.Balance))
	return nil
}
