package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dolarame/ativos/internal/core/domain"
	"github.com/dolarame/ativos/internal/core/services"
	"github.com/dolarame/ativos/pkg/ui"
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Launch interactive dashboard (alias: dash)",
	Long: `Launch a full-screen dashboard to register and browse ativos.

The dashboard provides:
- A registration form (Nome, Valor, Data) validated before anything is sent
- The list of ativos with values shown with two decimals
- Live filtering by name

Keyboard Shortcuts:
  Form:
    Tab         Next field / list
    Shift+Tab   Previous field
    Enter       Submit
    Esc         Go to list

  List:
    ↑/k ↓/j     Move
    g / G       Jump to top / bottom
    /           Search by name
    y           Copy selected ativo
    Esc         Clear search

  General:
    Ctrl+R      Reload from the service
    ?           Show help
    q           Quit (from the list)
    Ctrl+C      Force quit`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	feed := newStoreFeed()
	unsubscribe := assetStore.Subscribe(func(s services.Snapshot) {
		feed.push(snapshotMsg{snapshot: s})
	})
	defer unsubscribe()
	unnotify := assetStore.OnNotify(func(n domain.Notification) {
		feed.push(notificationMsg{notification: n})
	})
	defer unnotify()

	m := newDashboardModel(ctx, assetStore, feed, appConfig.NotificationTTL())

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running dashboard: %w", err)
	}

	return nil
}

// Dashboard view modes
type viewMode int

const (
	modeNormal viewMode = iota
	modeSearch
	modeHelp
)

// Focusable areas, in tab order
type focusArea int

const (
	focusName focusArea = iota
	focusValue
	focusDate
	focusList
	focusCount
)

// Form field indexes
const (
	fieldName = iota
	fieldValue
	fieldDate
)

// Dashboard model
type dashboardModel struct {
	ctx           context.Context
	store         *services.AssetStore
	feed          *storeFeed
	snapshot      services.Snapshot
	inputs        []textinput.Model
	focus         focusArea
	cursor        int // Selected item index
	offset        int // Scroll offset for viewport
	mode          viewMode
	searchInput   textinput.Model
	spinner       spinner.Model
	help          help.Model
	keys          keyMap
	width         int
	height        int
	ready         bool
	submitting    bool
	message       string // Status message
	messageStyle  lipgloss.Style
	messageExpiry time.Time
	messageTTL    time.Duration
}

// Key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Next      key.Binding
	Prev      key.Binding
	Submit    key.Binding
	Refresh   key.Binding
	Search    key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Escape    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Refresh, k.Search, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Submit, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom, k.Search, k.Copy},
		{k.Refresh, k.Help, k.Quit, k.ForceQuit},
	}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add ativo"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reload"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "force quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

func newDashboardModel(ctx context.Context, store *services.AssetStore, feed *storeFeed, ttl time.Duration) dashboardModel {
	name := textinput.New()
	name.Placeholder = "PETR4"
	name.CharLimit = domain.NameLength
	name.Width = 12
	name.Prompt = ""
	name.Focus()

	value := textinput.New()
	value.Placeholder = "0.00"
	value.CharLimit = 20
	value.Width = 12
	value.Prompt = ""

	date := textinput.New()
	date.Placeholder = "AAAA-MM-DD"
	date.CharLimit = 30
	date.Width = 12
	date.Prompt = ""

	search := textinput.New()
	search.Placeholder = "Buscar por nome..."
	search.CharLimit = 20
	search.Width = 30

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	if ttl <= 0 {
		ttl = 3 * time.Second
	}

	return dashboardModel{
		ctx:         ctx,
		store:       store,
		feed:        feed,
		snapshot:    store.Snapshot(),
		inputs:      []textinput.Model{name, value, date},
		focus:       focusName,
		mode:        modeNormal,
		searchInput: search,
		spinner:     sp,
		help:        help.New(),
		keys:        keys,
		messageTTL:  ttl,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	// Load the list as soon as the dashboard is shown
	return tea.Batch(
		m.feed.wait(m.ctx),
		m.refresh(),
		m.spinner.Tick,
		textinput.Blink,
	)
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeHelp:
			return m.updateHelp(msg)
		case modeSearch:
			return m.updateSearch(msg)
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)

	case storeEventsMsg:
		var cmds []tea.Cmd
		for _, event := range msg {
			var cmd tea.Cmd
			m, cmd = m.applyStoreEvent(event)
			cmds = append(cmds, cmd)
		}
		// Keep listening
		cmds = append(cmds, m.feed.wait(m.ctx))
		return m, tea.Batch(cmds...)

	case submitDoneMsg:
		m.submitting = false
		if msg.err == nil {
			m.resetForm()
		}
		return m, nil

	case statusMsg:
		m.message = msg.message
		m.messageStyle = msg.style
		m.messageExpiry = time.Now().Add(m.messageTTL)
		return m, m.clearMessageAfter()

	case clearMessageMsg:
		if !time.Now().Before(m.messageExpiry) {
			m.message = ""
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Forward blink and other messages to the focused input
	return m.updateFocusedInput(msg)
}

func (m dashboardModel) applyStoreEvent(event tea.Msg) (dashboardModel, tea.Cmd) {
	switch e := event.(type) {
	case snapshotMsg:
		// The view may already hold a newer state read directly from the store
		if e.snapshot.Version < m.snapshot.Version {
			return m, nil
		}
		m.snapshot = e.snapshot
		m.clampCursor()
	case notificationMsg:
		style, icon := ui.StyleSuccess, ui.IconSuccess
		if e.notification.Kind == domain.NotifyError {
			style, icon = ui.StyleError, ui.IconError
		}
		m.message = icon + " " + e.notification.Message
		m.messageStyle = style
		m.messageExpiry = time.Now().Add(m.messageTTL)
		return m, m.clearMessageAfter()
	}
	return m, nil
}

func (m dashboardModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		return m.setFocus(m.focus + 1)

	case key.Matches(msg, m.keys.Prev):
		return m.setFocus(m.focus - 1)

	case key.Matches(msg, m.keys.Escape):
		return m.setFocus(focusList)

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()

	case key.Matches(msg, m.keys.Submit):
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.submit(m.candidate())
	}

	next, cmd := m.updateFocusedInput(msg)
	m = next.(dashboardModel)

	// Keep the store draft in sync with what is on screen
	if c := m.candidate(); c != m.store.Draft() {
		m.store.SetDraft(c)
	}
	return m, cmd
}

func (m dashboardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	assets := m.snapshot.Filtered

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m.setFocus(m.focus + 1)

	case key.Matches(msg, m.keys.Prev):
		return m.setFocus(m.focus - 1)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(assets)-1 {
			m.cursor++
			m.adjustViewport()
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.offset = 0

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(assets)-1, 0)
		m.adjustViewport()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()

	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Copy):
		if len(assets) > 0 {
			return m, copyAsset(assets[m.cursor])
		}

	case key.Matches(msg, m.keys.Escape):
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.applySearch()
		}

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
	}

	return m, nil
}

func (m dashboardModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = modeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.applySearch()
		return m, nil

	// Enter keeps the filter and returns to the list
	case msg.Type == tea.KeyEnter:
		m.mode = modeNormal
		m.searchInput.Blur()
		return m, nil

	// Only use arrow keys for navigation in search mode, not j/k
	case msg.Type == tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
			m.adjustViewport()
		}

	case msg.Type == tea.KeyDown:
		if m.cursor < len(m.snapshot.Filtered)-1 {
			m.cursor++
			m.adjustViewport()
		}

	default:
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.applySearch()
		return m, cmd
	}

	return m, nil
}

func (m dashboardModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = modeNormal
	}
	return m, nil
}

func (m dashboardModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus == focusList {
		return m, nil
	}

	var cmd tea.Cmd
	idx := int(m.focus)
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)

	// The name is always typed in uppercase
	if idx == fieldName {
		if v := m.inputs[idx].Value(); v != strings.ToUpper(v) {
			m.inputs[idx].SetValue(strings.ToUpper(v))
		}
	}

	return m, cmd
}

func (m dashboardModel) setFocus(target focusArea) (tea.Model, tea.Cmd) {
	m.focus = (target + focusCount) % focusCount

	var cmd tea.Cmd
	for i := range m.inputs {
		if focusArea(i) == m.focus {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return m, cmd
}

func (m dashboardModel) candidate() domain.Candidate {
	return domain.Candidate{
		Name:  m.inputs[fieldName].Value(),
		Value: m.inputs[fieldValue].Value(),
		Date:  m.inputs[fieldDate].Value(),
	}
}

func (m *dashboardModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.focus = focusName
	for i := range m.inputs {
		if i == fieldName {
			m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
}

func (m *dashboardModel) applySearch() {
	m.store.SetSearchTerm(m.searchInput.Value())
	m.snapshot = m.store.Snapshot()
	m.clampCursor()
}

func (m *dashboardModel) clampCursor() {
	if m.cursor >= len(m.snapshot.Filtered) {
		m.cursor = len(m.snapshot.Filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustViewport()
}

func (m *dashboardModel) listHeight() int {
	h := m.height - 12 // Reserve space for header, search, footer
	if h < 3 {
		h = 3
	}
	return h
}

func (m *dashboardModel) adjustViewport() {
	listHeight := m.listHeight()

	// Scroll down
	if m.cursor >= m.offset+listHeight {
		m.offset = m.cursor - listHeight + 1
	}

	// Scroll up
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

func (m dashboardModel) clearMessageAfter() tea.Cmd {
	return tea.Tick(m.messageTTL, func(time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}

// refresh reloads the list. Failures reach the view as notifications.
func (m dashboardModel) refresh() tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		_ = store.Refresh(ctx)
		return nil
	}
}

func (m dashboardModel) submit(c domain.Candidate) tea.Cmd {
	store, ctx := m.store, m.ctx
	return func() tea.Msg {
		return submitDoneMsg{err: store.Create(ctx, c)}
	}
}

func copyAsset(a domain.Asset) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(a.ClipboardLine()); err != nil {
			return statusMsg{
				message: ui.IconError + " Falha ao copiar: " + err.Error(),
				style:   ui.StyleError,
			}
		}
		return statusMsg{
			message: ui.IconClipboard + " Copiado: " + a.Name,
			style:   ui.StyleSuccess,
		}
	}
}

func (m dashboardModel) View() string {
	if !m.ready {
		return "\n  Carregando painel..."
	}

	if m.mode == modeHelp {
		return m.viewHelp()
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")

	formWidth := 34
	listWidth := m.width - formWidth - 4
	if listWidth < 30 {
		listWidth = 30
	}

	s.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderForm(formWidth),
		"  ",
		m.renderListPane(listWidth),
	))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m dashboardModel) viewHelp() string {
	var s strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		Padding(1, 2)

	s.WriteString(titleStyle.Render("Ativos - Atalhos"))
	s.WriteString("\n\n")

	h := m.help
	h.ShowAll = true
	s.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(h.View(m.keys)))
	s.WriteString("\n\n")
	s.WriteString(ui.StyleMuted.Render("  Press ESC or ? to return to dashboard"))
	s.WriteString("\n")

	return s.String()
}

func (m dashboardModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ui.ColorPrimary).
		Bold(true).
		Padding(0, 1)

	statsStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Align(lipgloss.Right)

	title := titleStyle.Render(ui.IconAsset + " Ativos")
	stats := statsStyle.Render(fmt.Sprintf("%d ativos  %s",
		len(m.snapshot.Filtered),
		domain.TotalValue(m.snapshot.Filtered).StringFixed(2)+" "+domain.Currency))

	// Create a two-column layout
	spacer := m.width - lipgloss.Width(title) - lipgloss.Width(stats)
	if spacer < 0 {
		spacer = 0
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		strings.Repeat(" ", spacer),
		stats,
	)
}

func (m dashboardModel) renderForm(width int) string {
	borderColor := ui.ColorMuted
	if m.focus != focusList && m.mode == modeNormal {
		borderColor = ui.ColorPrimary
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width)

	labelStyle := lipgloss.NewStyle().Width(7)

	var s strings.Builder
	s.WriteString(ui.StyleHeader.Render("Cadastro"))
	s.WriteString("\n\n")

	labels := []string{"Nome", "Valor", "Data"}
	for i, label := range labels {
		l := labelStyle.Render(label)
		if focusArea(i) == m.focus {
			l = ui.StylePrimary.Inherit(labelStyle).Render(label)
		}
		s.WriteString(l)
		s.WriteString(m.inputs[i].View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.submitting {
		s.WriteString(ui.StyleMuted.Render("Enviando..."))
	} else {
		s.WriteString(ui.StyleMuted.Render("[enter] Adicionar"))
	}

	return boxStyle.Render(s.String())
}

func (m dashboardModel) renderListPane(width int) string {
	borderColor := ui.ColorMuted
	if m.focus == focusList || m.mode == modeSearch {
		borderColor = ui.ColorPrimary
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width)

	var s strings.Builder
	s.WriteString(m.renderSearchBar())
	s.WriteString("\n\n")
	s.WriteString(m.renderAssetList(width - 4))

	return boxStyle.Render(s.String())
}

func (m dashboardModel) renderSearchBar() string {
	prompt := ui.StyleMuted.Render(ui.IconSearch + " ")
	if m.mode == modeSearch {
		prompt = ui.StylePrimary.Render(ui.IconSearch + " ")
	}

	if m.mode != modeSearch && m.searchInput.Value() == "" {
		return prompt + ui.StyleMuted.Render("Press / to search...")
	}
	return prompt + m.searchInput.View()
}

// renderAssetList shows, in order of precedence, the loading indicator, the
// empty state or the rows
func (m dashboardModel) renderAssetList(width int) string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Italic(true).
		Padding(1, 2)

	if m.snapshot.Loading {
		return emptyStyle.Render(m.spinner.View() + " Carregando...")
	}

	if m.snapshot.NotFound() {
		return emptyStyle.Render("Nenhum ativo encontrado.")
	}

	var s strings.Builder
	assets := m.snapshot.Filtered

	start := m.offset
	end := m.offset + m.listHeight()
	if end > len(assets) {
		end = len(assets)
	}

	for i := start; i < end; i++ {
		s.WriteString(m.renderAssetItem(assets[i], i == m.cursor && m.focus == focusList, width))
		s.WriteString("\n")
	}

	return strings.TrimSuffix(s.String(), "\n")
}

func (m dashboardModel) renderAssetItem(a domain.Asset, selected bool, width int) string {
	line := fmt.Sprintf("%-6s %14s  %s", a.Name, a.DisplayValue(), a.Date)
	line = padRight(truncate(line, width-2), width-2)

	if selected {
		return ui.StylePrimary.Render("▸ " + line)
	}
	return "  " + line
}

func (m dashboardModel) renderFooter() string {
	// Status message
	var statusLine string
	if m.message != "" && time.Now().Before(m.messageExpiry) {
		statusLine = m.messageStyle.Render(m.message)
	} else {
		statusLine = ui.StyleMuted.Render("Pronto")
	}

	helpHint := m.help.View(m.keys)

	footerStyle := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		Padding(0, 1)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		statusLine,
		helpHint,
	)

	return footerStyle.Render(content)
}

func padRight(s string, width int) string {
	// Strip ANSI codes to get real length
	realLen := lipgloss.Width(s)
	if realLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-realLen)
}

type statusMsg struct {
	message string
	style   lipgloss.Style
}

type clearMessageMsg struct{}

type submitDoneMsg struct {
	err error
}

type snapshotMsg struct {
	snapshot services.Snapshot
}

type notificationMsg struct {
	notification domain.Notification
}

// storeEventsMsg carries every store event queued since the last delivery
type storeEventsMsg []tea.Msg

// storeFeed queues store callbacks for the program. Listeners may run on the
// event loop itself, so they must never block on it.
type storeFeed struct {
	mu     sync.Mutex
	queue  []tea.Msg
	signal chan struct{}
}

func newStoreFeed() *storeFeed {
	return &storeFeed{signal: make(chan struct{}, 1)}
}

func (f *storeFeed) push(msg tea.Msg) {
	f.mu.Lock()
	f.queue = append(f.queue, msg)
	f.mu.Unlock()

	select {
	case f.signal <- struct{}{}:
	default:
	}
}

func (f *storeFeed) drain() storeEventsMsg {
	f.mu.Lock()
	defer f.mu.Unlock()

	events := storeEventsMsg(f.queue)
	f.queue = nil
	return events
}

// wait blocks until events are queued or ctx is done
func (f *storeFeed) wait(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case <-f.signal:
			return f.drain()
		}
	}
}
