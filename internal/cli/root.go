package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/service"
	"github.com/alexanderramin/gemdesk/internal/session"
)

// App holds references to all service interfaces used by CLI commands,
// plus the operator session scoping every call.
type App struct {
	Lifecycle service.LifecycleService
	Shipments service.ShipmentService
	Ledger    service.LedgerService
	Directory service.DirectoryService
	Session   *session.Session
}

// NewRootCmd creates the top-level "gemdesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gemdesk",
		Short: "Sales quotation workbench for the jewelry remote store",
	}

	root.AddCommand(
		newQuotationCmd(app),
		newShipCmd(app),
		newLedgerCmd(app),
		newAgentsCmd(app),
		newClientsCmd(app),
		newBrowseCmd(app),
	)

	return root
}

// findQuotation walks the scoped list until it finds the given id.
// addPageFlag registers the shared --page flag on paginated listings.
func addPageFlag(fs *pflag.FlagSet, page *int) {
	fs.IntVar(page, "page", 1, "Page number")
}

func findQuotation(ctx context.Context, app *App, id string) (*domain.Quotation, error) {
	const maxPages = 100
	seen := 0
	for page := 1; page <= maxPages; page++ {
		result, err := app.Lifecycle.List(ctx, app.Session.AgentID, page)
		if err != nil {
			return nil, err
		}
		for _, q := range result.Items {
			if q.ID == id {
				return q, nil
			}
		}
		seen += len(result.Items)
		if len(result.Items) == 0 || seen >= result.TotalRecords {
			break
		}
	}
	return nil, fmt.Errorf("quotation not found: %q", id)
}
