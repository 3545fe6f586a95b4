package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fahrwerk/bikesim/internal/application/simulation/commands"
	"github.com/fahrwerk/bikesim/internal/domain/simulation"
)

// NewTransferCommand creates the transfer command
func NewTransferCommand() *cobra.Command {
	var lines []string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move stock between warehouses",
		Long: `Move components or finished bicycles between warehouses.

Each transfer line has the form item:from:to:quantity. Finished bicycles
are addressed as model:tier, so the item field itself may contain a colon
and a full line reads e.g. herrenrad:standard:germany:france:5.
Quantities are cut to what the source holds; lines the destination
cannot fit are skipped. A flat fee is charged once per executed transfer.

Examples:
  bikesim transfer --session mygame --line laufradsatz_standard:germany:france:5
  bikesim transfer --session mygame --line herrenrad:standard:germany:france:3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			return runTransfer(sessionName, lines)
		},
	}

	cmd.Flags().StringArrayVar(&lines, "line", nil, "Transfer line item:from:to:quantity (repeatable)")
	cmd.MarkFlagRequired("line")

	return cmd
}

func runTransfer(session string, rawLines []string) error {
	plan := make([]simulation.TransferLine, 0, len(rawLines))
	for _, raw := range rawLines {
		item, from, to, qty, err := parseTransferLine(raw)
		if err != nil {
			return err
		}
		plan = append(plan, simulation.TransferLine{
			Item:     item,
			From:     from,
			To:       to,
			Quantity: qty,
		})
	}

	rt, err := newRuntime(configPath)
	if err != nil {
		return err
	}
	defer rt.Close()

	response, err := rt.Mediator.Send(rt.Context(), &commands.TransferInventoryCommand{
		Session: session,
		Lines:   plan,
	})
	if err != nil {
		return err
	}
	result := response.(*commands.TransferInventoryResponse)

	printWarnings(result.Result.Warnings)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Item", "Moved"}),
	)
	for _, item := range sortedMapKeys(result.Result.Transferred) {
		table.Append([]string{item, fmt.Sprintf("%d", result.Result.Transferred[item])})
	}
	table.Render()

	fmt.Printf("Transfer fee: %s\n", formatMoney(result.Result.Fee))
	fmt.Printf("Balance:      %s\n", formatMoney(result.Balance))
	return nil
}
