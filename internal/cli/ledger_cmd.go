package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gemdesk/internal/cli/formatter"
	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/gateway"
	"github.com/alexanderramin/gemdesk/internal/projection"
)

func newLedgerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Client ledgers and shipment records",
	}

	cmd.AddCommand(
		newLedgerShowCmd(app),
		newLedgerAddCmd(app),
		newLedgerTrackCmd(app),
		newLedgerUpdateCmd(app),
	)

	return cmd
}

func newLedgerShowCmd(app *App) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "show <clientID>",
		Short: "Show a client's ledger with totals and shipment stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Ledger.Ledger(context.Background(), args[0], page)
			if err != nil {
				return err
			}

			fmt.Println(formatter.ClientHeader(view.Ledger.Client))
			fmt.Print(formatter.LedgerTable(view.Ledger.Transactions))
			fmt.Println()
			fmt.Println(formatter.TotalsLine(view.Totals))
			fmt.Println(formatter.StatsLine(view.Stats))
			fmt.Printf("\npage %d of %d (%d transactions)\n", view.Page,
				projection.PageCount(view.Ledger.TotalRecords, projection.DefaultPageSize),
				view.Ledger.TotalRecords)
			return nil
		},
	}

	addPageFlag(cmd.Flags(), &page)
	return cmd
}

func newLedgerAddCmd(app *App) *cobra.Command {
	var amountStr, txType, note string

	cmd := &cobra.Command{
		Use:   "add <clientID>",
		Short: "Append a transaction to a client's ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if amountStr == "" || txType == "" || note == "" {
				if err := ledgerEntryForm(&amountStr, &txType, &note).Run(); err != nil {
					return err
				}
			}

			amount, err := strconv.ParseFloat(amountStr, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			tx, err := app.Ledger.Record(context.Background(), app.Session.Role, gateway.LedgerRecord{
				ClientID: args[0],
				Amount:   amount,
				Type:     domain.TransactionType(txType),
				Note:     note,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Recorded %s %s (%s)\n", tx.Type, formatter.Money(tx.Amount), tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "Amount (must be positive)")
	cmd.Flags().StringVar(&txType, "type", "", "CREDIT or DEBIT")
	cmd.Flags().StringVar(&note, "note", "", "Transaction note")
	return cmd
}

func newLedgerTrackCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "track <shippingID> <trackingID>",
		Short: "Assign a tracking id to a shipment record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Ledger.AssignTracking(context.Background(), app.Session.Role, args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Shipment %s now tracks as %s\n", args[0], args[1])
			return nil
		},
	}
}

func newLedgerUpdateCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "update <shippingID>",
		Short: "Advance a shipment record's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromStatus, err := domain.ParseStatus(from)
			if err != nil {
				return err
			}
			toStatus, err := domain.ParseStatus(to)
			if err != nil {
				return err
			}
			if err := app.Ledger.UpdateShipment(context.Background(), app.Session.Role, args[0], fromStatus, toStatus); err != nil {
				return err
			}
			fmt.Printf("Shipment %s is now %s\n", args[0], formatter.StatusBadge(toStatus))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Current shipment status")
	cmd.Flags().StringVar(&to, "to", "", "New shipment status")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
