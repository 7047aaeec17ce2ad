package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/gemdesk/internal/cli"
	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/gateway"
	"github.com/alexanderramin/gemdesk/internal/service"
	"github.com/alexanderramin/gemdesk/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	role := domain.RoleAgent
	if r := os.Getenv("GEMDESK_ROLE"); r != "" {
		parsed, err := domain.ParseRole(r)
		if err != nil {
			return err
		}
		role = parsed
	}

	agentID := os.Getenv("GEMDESK_AGENT_ID")
	if role == domain.RoleAgent && agentID == "" {
		return fmt.Errorf("GEMDESK_AGENT_ID is required for the agent role")
	}

	gw, err := buildGateway()
	if err != nil {
		return err
	}

	app := &cli.App{
		Lifecycle: service.NewLifecycleService(gw),
		Shipments: service.NewShipmentService(gw),
		Ledger:    service.NewLedgerService(gw),
		Directory: service.NewDirectoryService(gw),
		Session:   session.New(role, agentID),
	}

	return cli.NewRootCmd(app).Execute()
}

// buildGateway picks the backend: an embedded SQLite store when
// GEMDESK_DB is set, the remote HTTP store otherwise.
func buildGateway() (gateway.Gateway, error) {
	if dbPath := os.Getenv("GEMDESK_DB"); dbPath != "" {
		return gateway.NewLocalGateway(dbPath)
	}

	cfg := gateway.LoadConfig()
	var observer gateway.Observer = gateway.NoopObserver{}
	if cfg.LogCalls && isatty.IsTerminal(os.Stderr.Fd()) {
		observer = gateway.NewLogObserver(os.Stderr)
	}
	return gateway.NewHTTPGateway(cfg, observer), nil
}
