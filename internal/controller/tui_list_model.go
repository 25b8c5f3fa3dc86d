package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	countWidth    = 8
)

// listDelegate renders a listRow as a right-aligned count followed by a label.
type listDelegate struct {
	offset int
}

func (d listDelegate) Height() int  { return 1 }
func (d listDelegate) Spacing() int { return 0 }
func (d listDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d listDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(listRow)
	if !ok {
		return
	}

	width := m.Width() - countWidth - 2

	var labelStyle, countStyle lipgloss.Style

	var label string

	if index == m.Index() {
		labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = labelStyle.
			Width(countWidth).
			Align(lipgloss.Right)

		label = animateScroll(row.label(), width, d.offset)
	} else {
		labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(countWidth).
			Align(lipgloss.Right)

		label = truncateToWidth(row.label(), width)
	}

	_, _ = fmt.Fprintf(w, "%s  %s", countStyle.Render(row.count()), labelStyle.Render(label))
}

// animateScroll returns a width-wide window of text that advances with offset,
// after a short pause on the truncated form.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const (
		gap   = "   "
		pause = 5
	)

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
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

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// listModel is the scrollable, filterable list behind the estimate and view screens.
type listModel struct {
	width        int
	height       int
	items        list.Model
	delegate     listDelegate
	title        string
	countHeader  string
	labelHeader  string
	loading      string
	summary      string
	empty        string
	err          error
	rendered     bool
	animOffset   int
	lastSelected int
}

func newListModel(title, countHeader, labelHeader, loading string) listModel {
	delegate := listDelegate{}
	items := list.New([]list.Item{}, delegate, defaultWidth, defaultHeight)
	items.SetShowPagination(false)
	items.SetShowFilter(true)
	items.SetShowHelp(false)
	items.SetShowTitle(false)
	items.SetShowStatusBar(false)
	items.FilterInput.Placeholder = "Filter…"

	return listModel{
		width:        defaultWidth,
		height:       defaultHeight,
		items:        items,
		delegate:     delegate,
		title:        title,
		countHeader:  countHeader,
		labelHeader:  labelHeader,
		loading:      loading,
		lastSelected: -1,
	}
}

func newEstimateModel() listModel {
	return newListModel("Scramble Estimate", "Lines", "File Path", "Discovering source files…\n")
}

func newReportsModel() listModel {
	return newListModel("Scramble Run Reports", "Changed", "Run", "Loading run reports…\n")
}

func (m listModel) Init() tea.Cmd {
	return tick(time.Second / 2)
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.items.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.items.SetDelegate(m.delegate)

			return m, tick(time.Millisecond * 150)
		}

		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && m.items.FilterState() != list.Filtering) {
			return m, tea.Quit
		}

		m.items, cmd = m.items.Update(msg)

		if m.items.Index() != m.lastSelected {
			m.lastSelected = m.items.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.items.SetDelegate(m.delegate)
		}

		return m, cmd

	case estimationMsg:
		m = m.handleEstimationMsg(msg)

	case reportsMsg:
		m = m.handleReportsMsg(msg)
	}

	return m, cmd
}

func (m listModel) handleEstimationMsg(msg estimationMsg) listModel {
	if msg.err != nil {
		return m.withError(msg.err)
	}

	rows := make([]list.Item, 0, len(msg.files))
	for _, file := range msg.files {
		rows = append(rows, file)
	}

	m.summary = fmt.Sprintf("Files: %s   Lines: %s", accent(len(msg.files)), accent(msg.totalLines))
	m.empty = "No source files found"

	return m.withRows(rows)
}

func (m listModel) handleReportsMsg(msg reportsMsg) listModel {
	if msg.err != nil {
		return m.withError(msg.err)
	}

	rows := make([]list.Item, 0, len(msg.reports))
	for _, report := range msg.reports {
		rows = append(rows, report)
	}

	m.summary = fmt.Sprintf("Runs: %s", accent(len(msg.reports)))
	m.empty = "No run reports found"

	return m.withRows(rows)
}

func (m listModel) withRows(rows []list.Item) listModel {
	m.items.SetItems(rows)
	m.rendered = true

	if len(rows) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m listModel) withError(err error) listModel {
	m.err = err
	m.rendered = true

	return m
}

func accent(value int) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render(fmt.Sprintf("%d", value))
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)
}

func summaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)
}

func footerStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(width)
}

func (m listModel) View() string {
	if !m.rendered {
		return m.loading
	}

	title := titleStyle().Render(m.title)

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 0, 1, 2)

		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			errStyle.Render("Error: "+m.err.Error()),
			footerStyle(m.width).Render("q quit"),
		)
	}

	summary := summaryStyle().Render(m.summary)

	var body string
	if len(m.items.Items()) == 0 {
		body = lipgloss.NewStyle().Padding(0, 0, 1, 2).Render(m.empty)
	} else {
		body = m.renderTable()
	}

	footer := footerStyle(m.width).Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, summary, body, footer)
}

func (m listModel) renderTable() string {
	// title, summary, footer, border and header rows
	listHeight := max(m.height-9, 5)
	listWidth := max(m.width-6, 20)

	m.items.SetHeight(listHeight)
	m.items.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%*s  %s", countWidth, m.countHeader, m.labelHeader))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.items.View(),
		),
	)
}
