package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gemdesk/internal/cli/formatter"
	"github.com/alexanderramin/gemdesk/internal/domain"
)

func newShipCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ship <id>...",
		Short: "Batch-ship manufacturing-complete quotations of one client",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			selection := make([]*domain.Quotation, 0, len(args))
			for _, id := range args {
				q, err := findQuotation(ctx, app, id)
				if err != nil {
					return err
				}
				selection = append(selection, q)
			}

			// The first quotation sets the batch's client scope; the
			// coordinator rejects anything outside it.
			outcome, err := app.Shipments.ShipSelected(ctx, selection[0].ClientID, selection)
			if err != nil {
				return err
			}
			fmt.Print(formatter.BatchOutcomeReport(outcome))
			return nil
		},
	}
	return cmd
}
