package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/gemdesk/internal/cli/formatter"
)

func newAgentsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List sales agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			agents, err := app.Directory.Agents(context.Background())
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(agents))
			for _, a := range agents {
				rows = append(rows, []string{a.ID, a.Username})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "USERNAME"}, rows))
			return nil
		},
	}
}

func newClientsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clients",
		Short: "List clients in the current scope",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := app.Directory.Clients(context.Background(), app.Session.AgentID)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(clients))
			for _, c := range clients {
				location := c.City
				if c.Country != "" {
					if location != "" {
						location += ", "
					}
					location += c.Country
				}
				rows = append(rows, []string{c.ID, c.ClientName, c.Email, location})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "NAME", "EMAIL", "LOCATION"}, rows))
			return nil
		},
	}
}
