package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/gemdesk/internal/cli/formatter"
	"github.com/alexanderramin/gemdesk/internal/domain"
	"github.com/alexanderramin/gemdesk/internal/gateway"
	"github.com/alexanderramin/gemdesk/internal/projection"
	"github.com/alexanderramin/gemdesk/internal/service"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactive quotation browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("browse needs an interactive terminal; use 'gemdesk quotation list' instead")
			}
			p := tea.NewProgram(newBrowseModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

type quotationsLoadedMsg struct {
	page *gateway.QuotationPage
	err  error
}

type clientsLoadedMsg struct {
	clients []domain.Client
	err     error
}

type batchDoneMsg struct {
	outcome *service.BatchOutcome
	err     error
}

// browseModel is the single-screen quotation browser: a filterable list
// with checkbox selection and batch shipping.
type browseModel struct {
	app *App

	items   []*domain.Quotation
	total   int
	visible []*domain.Quotation
	clients []domain.Client

	cursor    int
	clientIdx int // index into the client filter cycle; 0 = all
	statusIdx int // index into the status filter cycle; 0 = all

	searching bool
	search    textinput.Model

	loading bool
	notice  string
	err     error

	width, height int
}

func newBrowseModel(app *App) *browseModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 64
	return &browseModel{
		app:     app,
		search:  search,
		loading: true,
	}
}

var browseKeys = struct {
	Up, Down, PrevPage, NextPage key.Binding
	Status, Client, Search       key.Binding
	Toggle, Ship, Refresh, Quit  key.Binding
}{
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	PrevPage: key.NewBinding(key.WithKeys("p", "left")),
	NextPage: key.NewBinding(key.WithKeys("n", "right")),
	Status:   key.NewBinding(key.WithKeys("s")),
	Client:   key.NewBinding(key.WithKeys("c")),
	Search:   key.NewBinding(key.WithKeys("/")),
	Toggle:   key.NewBinding(key.WithKeys(" ")),
	Ship:     key.NewBinding(key.WithKeys("S")),
	Refresh:  key.NewBinding(key.WithKeys("r")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
}

func (m *browseModel) Init() tea.Cmd {
	return tea.Batch(m.loadQuotations(), m.loadClients())
}

func (m *browseModel) loadQuotations() tea.Cmd {
	app := m.app
	page := app.Session.Page
	return func() tea.Msg {
		result, err := app.Lifecycle.List(context.Background(), app.Session.AgentID, page)
		return quotationsLoadedMsg{page: result, err: err}
	}
}

func (m *browseModel) loadClients() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		clients, err := app.Directory.Clients(context.Background(), app.Session.AgentID)
		return clientsLoadedMsg{clients: clients, err: err}
	}
}

func (m *browseModel) shipSelected() tea.Cmd {
	app := m.app
	clientID := app.Session.ClientFilter
	selection := app.Session.SelectedQuotations(m.visible)
	return func() tea.Msg {
		outcome, err := app.Shipments.ShipSelected(context.Background(), clientID, selection)
		return batchDoneMsg{outcome: outcome, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case quotationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.items = msg.page.Items
		m.total = msg.page.TotalRecords
		// A fresh fetch drops selected ids that no longer qualify.
		m.app.Session.Reconcile(m.items)
		m.refreshVisible()
		return m, nil

	case clientsLoadedMsg:
		if msg.err == nil {
			m.clients = msg.clients
		}
		return m, nil

	case batchDoneMsg:
		// Selection never survives a batch attempt, and the list is
		// always re-fetched, whatever the outcome was.
		m.app.Session.ClearSelection()
		m.loading = true
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.notice = formatter.BatchOutcomeReport(msg.outcome)
		}
		return m, m.loadQuotations()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.app.Session.SetSearch(m.search.Value())
			m.refreshVisible()
			return m, nil
		case "esc":
			m.searching = false
			m.search.SetValue("")
			m.app.Session.SetSearch("")
			m.refreshVisible()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	sess := m.app.Session
	switch {
	case key.Matches(msg, browseKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, browseKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, browseKeys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, browseKeys.NextPage):
		last := projection.PageCount(m.total, projection.DefaultPageSize)
		if sess.Page < last {
			sess.Page++
			m.loading = true
			return m, m.loadQuotations()
		}

	case key.Matches(msg, browseKeys.PrevPage):
		if sess.Page > 1 {
			sess.Page--
			m.loading = true
			return m, m.loadQuotations()
		}

	case key.Matches(msg, browseKeys.Status):
		m.statusIdx = (m.statusIdx + 1) % (len(domain.AllStatuses) + 1)
		if m.statusIdx == 0 {
			sess.SetStatusFilter(domain.ScopeAll)
		} else {
			sess.SetStatusFilter(string(domain.AllStatuses[m.statusIdx-1]))
		}
		m.refreshVisible()

	case key.Matches(msg, browseKeys.Client):
		m.clientIdx = (m.clientIdx + 1) % (len(m.clients) + 1)
		if m.clientIdx == 0 {
			sess.SetClientFilter(domain.ScopeAll)
		} else {
			sess.SetClientFilter(m.clients[m.clientIdx-1].ID)
		}
		m.refreshVisible()

	case key.Matches(msg, browseKeys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, browseKeys.Toggle):
		if sess.SelectionEnabled() && m.cursor < len(m.visible) {
			sess.Toggle(m.visible[m.cursor].ID)
		}

	case key.Matches(msg, browseKeys.Ship):
		if sess.SelectionCount() > 0 {
			m.notice = ""
			m.loading = true
			return m, m.shipSelected()
		}

	case key.Matches(msg, browseKeys.Refresh):
		m.loading = true
		return m, m.loadQuotations()
	}
	return m, nil
}

func (m *browseModel) refreshVisible() {
	m.visible = projection.Apply(m.items, m.app.Session.Filter())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *browseModel) View() string {
	sess := m.app.Session

	header := formatter.Header(fmt.Sprintf("quotations · %s", sess.Role))
	filters := fmt.Sprintf("status: %s   client: %s   page %d/%d",
		m.statusFilterLabel(), m.clientFilterLabel(),
		sess.Page, projection.PageCount(m.total, projection.DefaultPageSize))
	if m.searching {
		filters += "   /" + m.search.View()
	} else if sess.Search != "" {
		filters += "   search: " + sess.Search
	}

	body := ""
	switch {
	case m.loading:
		body = formatter.StyleDim.Render("loading...")
	case m.err != nil:
		body = formatter.StyleRed.Render("error: " + m.err.Error())
	case len(m.visible) == 0:
		body = formatter.StyleDim.Render("no quotations match")
	default:
		withSelection := sess.SelectionEnabled()
		rows := make([][]string, 0, len(m.visible))
		for i, q := range m.visible {
			row := formatter.QuotationRow(q, sess.Selected(q.ID), withSelection)
			if i == m.cursor {
				row[0] = formatter.StyleHeader.Render("▸") + row[0]
			}
			rows = append(rows, row)
		}
		body = formatter.RenderTable(formatter.QuotationHeaders(withSelection), rows)
	}

	help := "j/k move  n/p page  s status  c client  / search  r refresh  q quit"
	if sess.SelectionEnabled() {
		help = "space select  S ship selected  " + help
	}

	out := header + "\n" + formatter.StyleDim.Render(filters) + "\n\n" + body + "\n"
	if m.notice != "" {
		out += "\n" + m.notice
	}
	out += "\n" + formatter.StyleDim.Render(help) + "\n"
	return out
}

func (m *browseModel) statusFilterLabel() string {
	if m.statusIdx == 0 {
		return "all"
	}
	return string(domain.AllStatuses[m.statusIdx-1])
}

func (m *browseModel) clientFilterLabel() string {
	if m.clientIdx == 0 {
		return "all"
	}
	return m.clients[m.clientIdx-1].ClientName
}
