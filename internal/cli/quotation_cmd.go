package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gemdesk/internal/cli/formatter"
	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/projection"
)

func newQuotationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quotation",
		Aliases: []string{"q"},
		Short:   "Manage quotations",
	}

	cmd.AddCommand(
		newQuotationListCmd(app),
		newQuotationSetStatusCmd(app),
		newQuotationFinalCmd(app),
		newQuotationDeleteCmd(app),
		newQuotationShipCmd(app),
	)

	return cmd
}

func newQuotationListCmd(app *App) *cobra.Command {
	var page int
	var status, client, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotations in the current scope",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			result, err := app.Lifecycle.List(ctx, app.Session.AgentID, page)
			if err != nil {
				return err
			}

			items := projection.Apply(result.Items, projection.Filter{
				Status:   status,
				ClientID: client,
				Search:   search,
			})

			rows := make([][]string, 0, len(items))
			for _, q := range items {
				rows = append(rows, formatter.QuotationRow(q, false, false))
			}
			fmt.Print(formatter.RenderTable(formatter.QuotationHeaders(false), rows))
			fmt.Println(formatter.StatusCountsLine(domain.StatusCounts(items)))

			pages := projection.PageCount(result.TotalRecords, projection.DefaultPageSize)
			fmt.Printf("\npage %d of %d (%d records)\n",
				projection.ClampPage(page, result.TotalRecords, projection.DefaultPageSize),
				pages, result.TotalRecords)
			return nil
		},
	}

	addPageFlag(cmd.Flags(), &page)
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (or 'all')")
	cmd.Flags().StringVar(&client, "client", "", "Filter by client id (or 'all')")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive text search")

	return cmd
}

func newQuotationSetStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move a quotation through its lifecycle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			target, err := domain.ParseStatus(args[1])
			if err != nil {
				return err
			}

			q, err := findQuotation(ctx, app, args[0])
			if err != nil {
				return err
			}

			if err := app.Lifecycle.RequestStatusChange(ctx, app.Session.Role, q, target); err != nil {
				if domain.IsAuthorization(err) {
					allowed := domain.AllowedTargets(q.Status, app.Session.Role)
					if len(allowed) > 0 {
						return fmt.Errorf("%w (as %s you may set: %v)", err, app.Session.Role, allowed)
					}
				}
				return err
			}

			fmt.Printf("Quotation %s is now %s\n", q.ID, formatter.StatusBadge(q.Status))
			return nil
		},
	}
	return cmd
}

func newQuotationFinalCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "final <id>",
		Short: "Create the final quotation for a manufacturing-complete parent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			q, err := findQuotation(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Lifecycle.CreateFinalQuotation(ctx, app.Session.Role, q); err != nil {
				return err
			}
			fmt.Printf("Created final quotation for %s\n", q.ID)
			return nil
		},
	}
}

func newQuotationDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a quotation (and its final quotations)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			q, err := findQuotation(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !yes {
				confirmed, err := confirmDelete(q)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted")
					return nil
				}
			}

			if err := app.Lifecycle.DeleteQuotation(ctx, app.Session.Role, q); err != nil {
				return err
			}
			fmt.Printf("Deleted quotation %s\n", q.ID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")
	return cmd
}

func newQuotationShipCmd(app *App) *cobra.Command {
	var tracking string

	cmd := &cobra.Command{
		Use:   "ship <id>",
		Short: "Assign a tracking id and mark a sentforshipping quotation shipped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			q, err := findQuotation(ctx, app, args[0])
			if err != nil {
				return err
			}

			if tracking == "" {
				if err := trackingForm(&tracking).Run(); err != nil {
					return err
				}
			}

			if err := app.Lifecycle.MarkShipped(ctx, q, tracking); err != nil {
				return err
			}
			fmt.Printf("Quotation %s shipped with tracking id %s\n", q.ID, tracking)
			return nil
		},
	}

	cmd.Flags().StringVar(&tracking, "tracking", "", "Tracking id (prompted if omitted)")
	return cmd
}
