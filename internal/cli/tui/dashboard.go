// Package tui implements the interactive dashboard: three tabbed list
// views (anomalies, patterns, insights) driven by the same controllers
// the plain CLI commands use, with fetches running off the UI loop and
// stale completions discarded by the controller.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zhar97/solar-om-analytics/internal/cli/client"
	"github.com/zhar97/solar-om-analytics/internal/cli/controller"
	"github.com/zhar97/solar-om-analytics/internal/cli/query"
	"github.com/zhar97/solar-om-analytics/internal/cli/types"
	"github.com/zhar97/solar-om-analytics/internal/cli/ui"
)

const (
	defaultWindowWidth  = 120
	defaultWindowHeight = 40
	filterInputWidth    = 60
)

var (
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle      = lipgloss.NewStyle().Bold(true)
	accentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Underline(true)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// DashboardProgram encapsulates the dashboard TUI program
type DashboardProgram struct {
	model dashboardModel
}

// NewDashboardProgram creates a dashboard over the given API client
func NewDashboardProgram(apiClient *client.APIClient) *DashboardProgram {
	return &DashboardProgram{model: initialModel(apiClient)}
}

// Run starts the dashboard TUI program
func (p *DashboardProgram) Run() error {
	program := tea.NewProgram(p.model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// fetchDoneMsg carries a finished fetch back into the UI loop. The
// apply closure hands the result to the owning controller, which
// discards it when a newer request has been issued since.
type fetchDoneMsg struct {
	apply func() bool
}

// pane is one tab of the dashboard.
type pane interface {
	title() string
	refresh() tea.Cmd
	handleKey(msg tea.KeyMsg) tea.Cmd
	view(width int) string
	filterKeys() []string
	setFilter(key, value string) tea.Cmd
	clearFilters() tea.Cmd
}

// listPane is the generic tab implementation. The record type only
// shows up in the render closures and the id accessor; everything else
// is the shared controller flow.
type listPane[T any] struct {
	name   string
	ctrl   *controller.Controller[T]
	id     func(T) string
	table  func(items []T, selectedID string) string
	detail func(T) string

	cursor int
}

func newListPane[T any](name string, schema query.Schema, fetch controller.FetchFunc[T],
	id func(T) string, table func([]T, string) string, detail func(T) string) *listPane[T] {
	return &listPane[T]{
		name:   name,
		ctrl:   controller.New(schema, fetch),
		id:     id,
		table:  table,
		detail: detail,
	}
}

func (p *listPane[T]) title() string { return p.name }

// runTicket executes one issued request off the UI loop.
func runTicket[T any](ctrl *controller.Controller[T], t controller.Ticket) tea.Cmd {
	return func() tea.Msg {
		res, err := ctrl.Fetch(context.Background(), t.Descriptor)
		return fetchDoneMsg{apply: func() bool { return ctrl.Complete(t, res, err) }}
	}
}

func (p *listPane[T]) refresh() tea.Cmd {
	return runTicket(p.ctrl, p.ctrl.Refresh())
}

func (p *listPane[T]) filterKeys() []string {
	return p.ctrl.State().Schema.FilterKeys
}

func (p *listPane[T]) setFilter(key, value string) tea.Cmd {
	p.cursor = 0
	return runTicket(p.ctrl, p.ctrl.SetFilter(key, value))
}

func (p *listPane[T]) clearFilters() tea.Cmd {
	p.cursor = 0
	return runTicket(p.ctrl, p.ctrl.ClearFilters())
}

func (p *listPane[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}

	case "down", "j":
		if p.cursor < len(p.ctrl.Items())-1 {
			p.cursor++
		}

	case "enter":
		items := p.ctrl.Items()
		if p.cursor < len(items) {
			p.ctrl.Select(p.id(items[p.cursor]))
		}

	case "esc":
		p.ctrl.ClearSelection()

	case "n", "right":
		if t, ok := p.ctrl.NextPage(); ok {
			p.cursor = 0
			return runTicket(p.ctrl, t)
		}

	case "p", "left":
		if t, ok := p.ctrl.PrevPage(); ok {
			p.cursor = 0
			return runTicket(p.ctrl, t)
		}

	case "s":
		next := p.ctrl.State().Schema.NextSort(p.ctrl.State().Sort.Column)
		p.cursor = 0
		return runTicket(p.ctrl, p.ctrl.SetSort(next))

	case "o":
		// Re-activating the current column flips its direction.
		p.cursor = 0
		return runTicket(p.ctrl, p.ctrl.SetSort(p.ctrl.State().Sort.Column))

	case "r":
		return runTicket(p.ctrl, p.ctrl.Retry())

	case "+":
		if t, ok := p.ctrl.SetPageSize(nextPageSize(p.ctrl.State())); ok {
			p.cursor = 0
			return runTicket(p.ctrl, t)
		}
	}

	return nil
}

// nextPageSize cycles through the schema's allowed page sizes.
func nextPageSize(st query.State) int {
	sizes := st.Schema.PageSizes
	for i, s := range sizes {
		if s == st.PageSize {
			return sizes[(i+1)%len(sizes)]
		}
	}
	return st.Schema.DefaultPageSize
}

func (p *listPane[T]) view(width int) string {
	var b strings.Builder

	st := p.ctrl.State()
	sortLine := fmt.Sprintf("sort %s %s • page size %d", st.Sort.Column, st.Sort.Direction, st.PageSize)
	if st.HasFilters() {
		keys := make([]string, 0, len(st.Schema.FilterKeys))
		for _, k := range st.Schema.FilterKeys {
			if v, ok := st.Filter(k); ok {
				keys = append(keys, fmt.Sprintf("%s=%s", k, v))
			}
		}
		sortLine += " • filters " + strings.Join(keys, " ")
	}
	b.WriteString(dimStyle.Render(sortLine))
	b.WriteString("\n\n")

	switch p.ctrl.Phase() {
	case controller.PhaseIdle, controller.PhaseLoading:
		// The spinner next to the tab bar already signals loading;
		// keep the body quiet so the layout does not jump.
		b.WriteString(dimStyle.Render("Loading " + p.name + "..."))
		b.WriteString("\n")

	case controller.PhaseFailed:
		b.WriteString(errorStyle.Render("✗ " + p.ctrl.Err()))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("r to retry the same request"))
		b.WriteString("\n")

	case controller.PhaseSucceeded:
		items := p.ctrl.Items()
		if len(items) == 0 {
			b.WriteString(dimStyle.Render("No " + p.name + " match the current filters."))
			b.WriteString("\n")
			break
		}

		b.WriteString(p.renderRows(items))
		b.WriteString(dimStyle.Render(ui.RenderPageSummary(st.Page, p.ctrl.TotalPages(), p.ctrl.Total(), p.name)))
		b.WriteString("\n")

		if selected, ok := p.ctrl.SelectedItem(p.id); ok {
			b.WriteString("\n")
			b.WriteString(p.detail(selected))
			b.WriteString("\n")
		}
	}

	return wrapText(b.String(), width)
}

// renderRows draws the table with the cursor row marked. The first
// column of each row is the selection marker; the cursor reuses it
// unless the row is already marked as selected.
func (p *listPane[T]) renderRows(items []T) string {
	lines := strings.Split(p.table(items, p.ctrl.Selected()), "\n")
	row := p.cursor + 1
	if row >= 1 && row < len(lines) && strings.HasPrefix(lines[row], " ") {
		lines[row] = accentStyle.Render("›") + lines[row][1:]
	}
	return strings.Join(lines, "\n")
}

// dashboardModel is the Bubble Tea model containing all dashboard state
type dashboardModel struct {
	apiClient *client.APIClient

	panes  []pane
	active int

	spin      spinner.Model
	filter    textinput.Model
	filtering bool

	err error

	width  int
	height int
}

func initialModel(apiClient *client.APIClient) dashboardModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = accentStyle

	filter := textinput.New()
	filter.Placeholder = "key=value (empty value removes the filter)"
	filter.Width = filterInputWidth
	filter.Prompt = "filter> "

	anomalies := newListPane("anomalies", query.Anomalies(),
		func(ctx context.Context, d query.Descriptor) (controller.Result[types.Anomaly], error) {
			items, total, err := apiClient.ListAnomalies(ctx, d)
			return controller.Result[types.Anomaly]{Items: items, Total: total}, err
		},
		func(a types.Anomaly) string { return a.AnomalyID },
		ui.RenderAnomalyTable, ui.RenderAnomalyDetail)

	patterns := newListPane("patterns", query.Patterns(),
		func(ctx context.Context, d query.Descriptor) (controller.Result[types.Pattern], error) {
			items, total, err := apiClient.ListPatterns(ctx, d)
			return controller.Result[types.Pattern]{Items: items, Total: total}, err
		},
		func(p types.Pattern) string { return p.PatternID },
		ui.RenderPatternTable, ui.RenderPatternDetail)

	insights := newListPane("insights", query.Insights(),
		func(ctx context.Context, d query.Descriptor) (controller.Result[types.Insight], error) {
			items, total, err := apiClient.ListInsights(ctx, d)
			return controller.Result[types.Insight]{Items: items, Total: total}, err
		},
		func(in types.Insight) string { return in.InsightID },
		ui.RenderInsightTable, ui.RenderInsightDetail)

	return dashboardModel{
		apiClient: apiClient,
		panes:     []pane{anomalies, patterns, insights},
		spin:      spin,
		filter:    filter,
		width:     defaultWindowWidth,
		height:    defaultWindowHeight,
	}
}

// Init loads all three tabs up front so switching is instant
func (m dashboardModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	for _, p := range m.panes {
		cmds = append(cmds, p.refresh())
	}
	return tea.Batch(cmds...)
}

// Update processes messages and updates the model (Bubble Tea interface)
func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		wasFiltering := m.filtering
		cmd := m.handleKeyPress(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		// Typed characters go to the filter input, but not the "/"
		// that opened it or the enter/esc that closed it.
		if wasFiltering && m.filtering {
			var inputCmd tea.Cmd
			m.filter, inputCmd = m.filter.Update(msg)
			cmds = append(cmds, inputCmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case fetchDoneMsg:
		msg.apply()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)

	default:
		if m.filtering {
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *dashboardModel) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if m.filtering {
		switch msg.Type {
		case tea.KeyEsc:
			m.filtering = false
			m.filter.Reset()
		case tea.KeyEnter:
			cmd := m.applyFilterInput()
			m.filtering = false
			m.filter.Reset()
			return cmd
		}
		return nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit

	case "tab":
		m.active = (m.active + 1) % len(m.panes)

	case "1", "2", "3":
		m.active = int(msg.String()[0] - '1')

	case "/":
		m.filtering = true
		m.err = nil
		return m.filter.Focus()

	case "f":
		m.err = nil
		return m.panes[m.active].clearFilters()

	default:
		return m.panes[m.active].handleKey(msg)
	}

	return nil
}

// applyFilterInput parses "key=value" and routes it to the active tab.
func (m *dashboardModel) applyFilterInput() tea.Cmd {
	text := strings.TrimSpace(m.filter.Value())
	if text == "" {
		return nil
	}

	key, value, found := strings.Cut(text, "=")
	if !found {
		m.err = fmt.Errorf("filters are key=value, e.g. severity=critical")
		return nil
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	active := m.panes[m.active]
	for _, allowed := range active.filterKeys() {
		if key == allowed {
			m.err = nil
			return active.setFilter(key, value)
		}
	}

	m.err = fmt.Errorf("unknown filter %q for %s (one of %s)",
		key, active.title(), strings.Join(active.filterKeys(), ", "))
	return nil
}

// View renders the UI (Bubble Tea interface)
func (m dashboardModel) View() string {
	tabs := make([]string, 0, len(m.panes))
	for i, p := range m.panes {
		label := fmt.Sprintf("%d %s", i+1, p.title())
		if i == m.active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	header := boldStyle.Render("solar analytics") + "  " + strings.Join(tabs, "  ") + "  " + m.spin.View()

	body := m.panes[m.active].view(m.width)

	var footer string
	switch {
	case m.filtering:
		footer = m.filter.View()
	case m.err != nil:
		footer = errorStyle.Render(m.err.Error())
	default:
		footer = dimStyle.Render("tab/1-3 switch • ↑↓ move • enter detail • esc close • n/p page • s sort • o order • / filter • f clear filters • r retry • q quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

// wrapText re-wraps rendered output to the window width, accounting
// for wide runes.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 10 {
		return text
	}

	lines := strings.Split(text, "\n")
	var result strings.Builder

	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(wrapLine(line, maxWidth))
	}

	return result.String()
}

func wrapLine(line string, maxWidth int) string {
	if runewidth.StringWidth(line) <= maxWidth {
		return line
	}

	var result strings.Builder
	var current strings.Builder
	currentWidth := 0

	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if currentWidth+w > maxWidth && currentWidth > 0 {
			result.WriteString(current.String())
			result.WriteString("\n")
			current.Reset()
			currentWidth = 0
		}
		current.WriteRune(r)
		currentWidth += w
	}

	if current.Len() > 0 {
		result.WriteString(current.String())
	}

	return result.String()
}
