package render

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/gopartner/salin/pkg/actions"
	"github.com/gopartner/salin/pkg/copyhelper"
	zone "github.com/lrstanley/bubblezone"
)

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205")).
	PaddingLeft(1)

var buttonStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Background(lipgloss.Color("236")).
	Padding(0, 1).
	MarginLeft(1)

var statusStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("42")).
	PaddingLeft(1)

var noticeStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")).
	PaddingLeft(1)

// Zone ids of the page buttons. The status element uses its configured id.
const (
	zoneCopyCommand = "copy-command"
	zoneCopyLink    = "copy-link"
	zoneOpenLink    = "open-link"
)

// --- Async message types ---

// copiedMsg carries the settled outcome of a clipboard write.
type copiedMsg struct {
	result copyhelper.Result
}

// openedMsg carries the result of handing the link to the browser.
type openedMsg struct {
	target string
	err    error
}

type keyMap struct {
	Command key.Binding
	Link    key.Binding
	Open    key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Command, k.Link, k.Open, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Command: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "salin perintah")),
		Link:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "salin link")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "buka link")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "keluar")),
	}
}

// Page is a Bubble Tea model showing the introduction, the copy buttons and
// the status element. Clipboard writes run as commands; their outcome is
// applied by the helper on the update loop, one at a time.
type Page struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	width    int

	helper  *copyhelper.Helper
	status  *StatusLine
	handoff *actions.Handoff
	log     copyhelper.DiagnosticLog
	ctx     context.Context
	zones   *zone.Manager
	tier    Tier

	keys   keyMap
	help   help.Model
	notice string
}

// PageOption configures optional Page behavior.
type PageOption func(*Page)

// WithHandoff enables opening the link in a browser.
func WithHandoff(h *actions.Handoff) PageOption {
	return func(p *Page) { p.handoff = h }
}

// WithLog sends handoff failures to log.
func WithLog(log copyhelper.DiagnosticLog) PageOption {
	return func(p *Page) { p.log = log }
}

// WithContext provides a cancellable context for clipboard writes.
func WithContext(ctx context.Context) PageOption {
	return func(p *Page) { p.ctx = ctx }
}

// WithZones enables mouse clicks on the buttons.
func WithZones(z *zone.Manager) PageOption {
	return func(p *Page) { p.zones = z }
}

// WithTier sets the terminal rendering tier.
func WithTier(t Tier) PageOption {
	return func(p *Page) { p.tier = t }
}

// NewPage creates a page with pre-rendered content. status must be the
// display the helper was created with.
func NewPage(title, content string, helper *copyhelper.Helper, status *StatusLine, opts ...PageOption) Page {
	p := Page{
		title:   title,
		content: content,
		helper:  helper,
		status:  status,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(&p)
	}
	p.content = processHyperlinks(p.content, p.tier)
	return p
}

// Init initializes the page.
func (p Page) Init() tea.Cmd {
	return nil
}

// Update handles messages for the page.
func (p Page) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 5
		p.width = msg.Width
		p.help.Width = msg.Width

		if !p.ready {
			p.viewport = viewport.New(msg.Width, max(msg.Height-headerHeight-footerHeight, 1))
			p.viewport.YPosition = headerHeight
			p.viewport.SetContent(p.content)
			p.ready = true
		} else {
			p.viewport.Width = msg.Width
			p.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		}

	case copiedMsg:
		p.helper.Settle(msg.result)
		return p, nil

	case openedMsg:
		if msg.err != nil {
			p.notice = "Gagal membuka link"
			if p.log != nil {
				p.log.Error("Gagal membuka link: " + msg.err.Error())
			}
		} else {
			p.notice = "Dibuka: " + msg.target
		}
		return p, nil

	case tea.MouseMsg:
		if p.zones != nil && msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			switch {
			case p.zones.Get(zoneCopyCommand).InBounds(msg):
				return p, p.copy(p.helper.Command())
			case p.zones.Get(zoneCopyLink).InBounds(msg):
				return p, p.copy(p.helper.Link())
			case p.zones.Get(zoneOpenLink).InBounds(msg):
				return p.open()
			}
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			return p, tea.Quit
		case key.Matches(msg, p.keys.Command):
			return p, p.copy(p.helper.Command())
		case key.Matches(msg, p.keys.Link):
			return p, p.copy(p.helper.Link())
		case key.Matches(msg, p.keys.Open):
			return p.open()
		}
	}

	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the page.
func (p Page) View() string {
	if !p.ready {
		return "Loading..."
	}

	header := headerStyle.Render(p.title)

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		p.mark(zoneCopyCommand, buttonStyle.Render("Salin perintah")),
		p.mark(zoneCopyLink, buttonStyle.Render("Salin link")),
	)
	if p.handoff != nil {
		buttons = lipgloss.JoinHorizontal(lipgloss.Top, buttons, p.mark(zoneOpenLink, buttonStyle.Render("Buka link")))
	}

	statusText := p.status.Text()
	if p.width > 2 {
		statusText = ansi.Truncate(statusText, p.width-2, "…")
	}
	status := p.mark(p.status.ID(), statusStyle.Render(statusText))

	footer := []string{buttons, status, noticeStyle.Render(p.notice), p.help.View(p.keys)}
	view := strings.Join(append([]string{header, "", p.viewport.View()}, footer...), "\n")
	if p.zones != nil {
		return p.zones.Scan(view)
	}
	return view
}

func (p Page) mark(id, s string) string {
	if p.zones == nil {
		return s
	}
	return p.zones.Mark(id, s)
}

// pageContext returns the page's context or a background context if none set.
func (p Page) pageContext() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}

// copy returns a command that writes a's text to the clipboard and reports
// the settled result back to the update loop.
func (p Page) copy(a copyhelper.Action) tea.Cmd {
	helper := p.helper
	ctx := p.pageContext()
	return func() tea.Msg {
		return copiedMsg{result: helper.Write(ctx, a)}
	}
}

// open hands the link to the browser asynchronously.
func (p Page) open() (tea.Model, tea.Cmd) {
	if p.handoff == nil {
		p.notice = "Browser tidak dikonfigurasi"
		return p, nil
	}
	handoff := p.handoff
	target := p.helper.Link().Text
	return p, func() tea.Msg {
		return openedMsg{target: target, err: handoff.OpenURL(target)}
	}
}

// RunPage launches the interactive page.
func RunPage(ctx context.Context, markdown string, title string, helper *copyhelper.Helper, status *StatusLine, opts ...PageOption) error {
	p := NewPage(title, "", helper, status, opts...)

	rendered, err := RenderMarkdown(markdown, 0, p.tier)
	if err != nil {
		return err
	}
	p.content = processHyperlinks(rendered, p.tier)

	zones := zone.New()
	defer zones.Close()
	p.zones = zones

	prog := tea.NewProgram(p, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = prog.Run()
	return err
}
