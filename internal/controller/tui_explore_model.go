package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/tracecity/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

	itemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Width(10)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type exploreKeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Activate  key.Binding
	Close     key.Binding
	Causality key.Binding
	Quit      key.Binding
}

func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Activate, k.Close, k.Causality, k.Quit}
}

func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newExploreKeyMap() exploreKeyMap {
	return exploreKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", "k", "left", "h"),
			key.WithHelp("↑/k", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "j", "right", "l"),
			key.WithHelp("↓/j", "next"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "inspect (twice: open)"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "close view"),
		),
		Causality: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "causality"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// addressableDelegate renders one addressable per line.
type addressableDelegate struct{}

func (d addressableDelegate) Height() int  { return 1 }
func (d addressableDelegate) Spacing() int { return 0 }
func (d addressableDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d addressableDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	a, ok := item.(addressableItem)
	if !ok {
		return
	}

	width := lm.Width() - 12

	label := truncateToWidth(a.Label, width)
	if a.View != m.ViewNone {
		label = truncateToWidth(a.Label+" ▸ "+string(a.View), width)
	}

	style := itemStyle
	if index == lm.Index() {
		style = selectedStyle
	}

	_, _ = fmt.Fprintf(w, "%s %s", kindStyle.Render(string(a.Type)), style.Render(label))
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// exploreModel is the Bubble Tea model of the explorer. The session owns
// the state; the model mirrors it after every message.
type exploreModel struct {
	session Session
	open    SessionFactory
	sched   *teaScheduler
	reloads <-chan struct{}

	list   list.Model
	detail viewport.Model
	help   help.Model
	keys   exploreKeyMap

	width  int
	height int
	status string
}

func newExploreModel(session Session, open SessionFactory, sched *teaScheduler, reloads <-chan struct{}) exploreModel {
	l := list.New([]list.Item{}, addressableDelegate{}, 40, 20)
	l.SetShowPagination(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)

	em := exploreModel{
		session: session,
		open:    open,
		sched:   sched,
		reloads: reloads,
		list:    l,
		detail:  viewport.New(40, 20),
		help:    help.New(),
		keys:    newExploreKeyMap(),
		width:   80,
		height:  24,
	}

	return em.resize(em.width, em.height).sync()
}

func (em exploreModel) Init() tea.Cmd {
	return waitForReload(em.reloads)
}

func (em exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return em.resize(msg.Width, msg.Height).sync(), nil

	case deferredMsg:
		msg.run()
		return em.sync(), nil

	case reloadMsg:
		return em.reload(), waitForReload(em.reloads)

	case tea.KeyMsg:
		return em.handleKey(msg)
	}

	return em, nil
}

func (em exploreModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, em.keys.Quit):
		return em, tea.Quit
	case key.Matches(msg, em.keys.Prev):
		em.session.Navigate(-1)
	case key.Matches(msg, em.keys.Next):
		em.session.Navigate(1)
	case key.Matches(msg, em.keys.Activate):
		target := em.session.Selected()
		if item, ok := em.list.SelectedItem().(addressableItem); ok {
			target = item.Key
		}

		if target != "" {
			em.session.Activate(target)
		}
	case key.Matches(msg, em.keys.Close):
		em.session.CloseView()
	case key.Matches(msg, em.keys.Causality):
		if em.session.ToggleCausality() {
			em.status = "causality links shown"
		} else {
			em.status = "causality links hidden"
		}
	default:
		var cmd tea.Cmd

		em.detail, cmd = em.detail.Update(msg)

		return em, cmd
	}

	return em.sync(), nil
}

func (em exploreModel) reload() exploreModel {
	next, err := em.open(em.sched)
	if err != nil {
		em.status = fmt.Sprintf("reload failed: %v", err)
		return em
	}

	em.session.Close()
	em.session = next
	em.status = "trace reloaded"

	return em.sync()
}

func (em exploreModel) resize(width, height int) exploreModel {
	em.width = width
	em.height = height

	bodyHeight := height - 8
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	listWidth := width / 2
	if listWidth < 20 {
		listWidth = 20
	}

	em.list.SetSize(listWidth, bodyHeight)
	em.detail.Width = width - listWidth - 6
	em.detail.Height = bodyHeight
	em.help.Width = width

	return em
}

// sync mirrors the session into the list and the detail panel.
func (em exploreModel) sync() exploreModel {
	addressables := em.session.Addressables()
	selected := em.session.Selected()

	items := make([]list.Item, len(addressables))
	index := 0

	for i, a := range addressables {
		items[i] = addressableItem{Addressable: a}
		if a.Key == selected {
			index = i
		}
	}

	em.list.SetItems(items)

	if len(items) > 0 {
		em.list.Select(index)
	}

	em.detail.SetContent(em.renderDetail())

	return em
}

func (em exploreModel) renderDetail() string {
	var b strings.Builder

	if view, ok := em.session.OpenView(); ok {
		fmt.Fprintf(&b, "%s %s (%s)\n\n", accentStyle.Render("open:"), view.Key, view.Kind)
	}

	insp, ok := em.session.Inspection()
	if !ok {
		b.WriteString("Nothing selected.\nPress enter to inspect, twice to open a nested view.")
		return b.String()
	}

	fmt.Fprintf(&b, "%s\n", accentStyle.Render(insp.Label))
	fmt.Fprintf(&b, "type:   %s (%s)\n", insp.Type, insp.ColorType)

	if insp.Line > 0 {
		fmt.Fprintf(&b, "line:   %d\n", insp.Line)
	}

	if insp.Address != "" {
		fmt.Fprintf(&b, "addr:   %s\n", insp.Address)
	}

	if insp.Condition != "" {
		fmt.Fprintf(&b, "cond:   %s", insp.Condition)

		if insp.ConditionResult != nil {
			fmt.Fprintf(&b, " = %t", *insp.ConditionResult)
		}

		b.WriteString("\n")
	}

	if insp.Iterations > 0 {
		fmt.Fprintf(&b, "iters:  %d\n", insp.Iterations)
	}

	if insp.Elided > 0 {
		fmt.Fprintf(&b, "elided: %d\n", insp.Elided)
	}

	fmt.Fprintf(&b, "steps:  %d\n", len(insp.StepIndices))

	if len(insp.Values) > 0 {
		b.WriteString("\nvalues:\n")

		for _, v := range insp.Values {
			fmt.Fprintf(&b, "  #%-5d %s\n", v.Step, v.Value)
		}
	}

	return b.String()
}

func (em exploreModel) View() string {
	title := titleStyle.Render("Trace City · " + em.session.Title())

	context := "city"
	if view, ok := em.session.OpenView(); ok {
		context = fmt.Sprintf("%s %s", view.Kind, view.Key)
	}

	summary := summaryStyle.Render(fmt.Sprintf("Context: %s   Entities: %s",
		accentStyle.Render(context),
		accentStyle.Render(fmt.Sprintf("%d", len(em.list.Items()))),
	))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(em.list.View()),
		panelStyle.Render(em.detail.View()),
	)

	footer := em.help.View(em.keys)
	if em.status != "" {
		footer = statusStyle.Render(em.status) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, body, footer)
}
