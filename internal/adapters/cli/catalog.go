package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fahrwerk/bikesim/internal/domain/catalog"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse components, bicycles, suppliers, and markets",
		Long: `Browse the product catalog the simulation runs on.

The catalog is fixed for every session: the components suppliers carry,
the bicycle models that can be built from them, and the markets they can
be sold in.

Examples:
  bikesim catalog components
  bikesim catalog bicycles
  bikesim catalog suppliers
  bikesim catalog markets`,
	}

	cmd.AddCommand(newCatalogComponentsCommand())
	cmd.AddCommand(newCatalogBicyclesCommand())
	cmd.AddCommand(newCatalogSuppliersCommand())
	cmd.AddCommand(newCatalogMarketsCommand())

	return cmd
}

func newCatalogComponentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List all components",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()

			table := tablewriter.NewTable(os.Stdout,
				tablewriter.WithHeader([]string{"Component", "Category", "Footprint"}),
			)
			for _, name := range cat.ComponentNames() {
				component, err := cat.Component(name)
				if err != nil {
					return err
				}
				table.Append([]string{
					component.Name(),
					component.Category().String(),
					fmt.Sprintf("%.2f", component.Footprint()),
				})
			}
			table.Render()
			return nil
		},
	}
}

func newCatalogBicyclesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bicycles",
		Short: "List all bicycle models",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()

			table := tablewriter.NewTable(os.Stdout,
				tablewriter.WithHeader([]string{"Model", "Base Price", "Skilled h", "Unskilled h", "Footprint", "Parts"}),
			)
			for _, name := range cat.BicycleNames() {
				bike, err := cat.Bicycle(name)
				if err != nil {
					return err
				}
				table.Append([]string{
					bike.Name(),
					formatMoney(bike.BasePrice()),
					fmt.Sprintf("%.1f", bike.SkilledHours()),
					fmt.Sprintf("%.1f", bike.UnskilledHours()),
					fmt.Sprintf("%.2f", bike.Footprint()),
					strings.Join(bike.Parts(), ", "),
				})
			}
			table.Render()
			return nil
		},
	}
}

func newCatalogSuppliersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suppliers",
		Short: "List all suppliers and their prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()

			for _, name := range cat.SupplierNames() {
				supplier, err := cat.Supplier(name)
				if err != nil {
					return err
				}
				fmt.Printf("%s (defect chance %.0f%%, loses %.0f%% of a bad batch)\n",
					supplier.Name(),
					supplier.DefectProbability()*100,
					supplier.DefectFraction()*100,
				)

				table := tablewriter.NewTable(os.Stdout,
					tablewriter.WithHeader([]string{"Component", "Price"}),
				)
				for _, component := range supplier.Components() {
					price, _ := supplier.Price(component)
					table.Append([]string{component, formatMoney(price)})
				}
				table.Render()
				fmt.Println()
			}
			return nil
		},
	}
}

func newCatalogMarketsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "markets",
		Short: "List all sales markets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()

			table := tablewriter.NewTable(os.Stdout,
				tablewriter.WithHeader([]string{"Market", "Region", "Price Factor", "Budget", "Standard", "Premium"}),
			)
			for _, name := range cat.MarketNames() {
				market, err := cat.Market(name)
				if err != nil {
					return err
				}
				table.Append([]string{
					market.Name(),
					market.Region(),
					fmt.Sprintf("%.2f", market.PriceFactor()),
					fmt.Sprintf("%.2f", market.TierWeight(catalog.TierBudget)),
					fmt.Sprintf("%.2f", market.TierWeight(catalog.TierStandard)),
					fmt.Sprintf("%.2f", market.TierWeight(catalog.TierPremium)),
				})
			}
			table.Render()
			return nil
		},
	}
}
