package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/scramble/internal/model"
)

var statusColors = map[m.FileStatus]lipgloss.Color{
	m.StatusChanged:   lipgloss.Color("2"),
	m.StatusUnchanged: lipgloss.Color("8"),
	m.StatusIgnored:   lipgloss.Color("11"),
	m.StatusFailed:    lipgloss.Color("1"),
}

// resultDelegate renders one processed file in the results list.
type resultDelegate struct {
	offset int
}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, model list.Model, index int, item list.Item) {
	result, ok := item.(resultItem)
	if !ok {
		return
	}

	// status, lines and spacing columns
	fileWidth := model.Width() - 24

	statusStyle := lipgloss.NewStyle().Bold(true).Width(10)
	linesStyle := lipgloss.NewStyle().Width(8).Align(lipgloss.Right)
	fileStyle := lipgloss.NewStyle()

	var file string

	if index == model.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		statusStyle = statusStyle.Inherit(selected)
		linesStyle = linesStyle.Inherit(selected)
		fileStyle = selected
		file = animateScroll(result.path, fileWidth, d.offset)
	} else {
		color, ok := statusColors[result.status]
		if !ok {
			color = lipgloss.Color("8")
		}

		statusStyle = statusStyle.Foreground(color)
		linesStyle = linesStyle.Foreground(lipgloss.Color("11"))
		fileStyle = fileStyle.Foreground(lipgloss.Color("14"))
		file = truncateToWidth(result.path, fileWidth)
	}

	lines := ""
	if result.status == m.StatusChanged {
		lines = fmt.Sprintf("%d", result.lines)
	}

	status := string(result.status)
	if result.regressed {
		status += "!"
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s",
		statusStyle.Render(status),
		linesStyle.Render(lines),
		fileStyle.Render(file),
	)
}

// runModel follows a scramble run: a progress bar while files are processed,
// then a browsable results list with an optional diff pane.
type runModel struct {
	width            int
	height           int
	progressBar      progress.Model
	info             m.RunInfo
	backups          []string
	current          string
	completed        int
	progressPercent  float64
	rendered         bool
	finished         bool
	runID            string
	stats            m.RunStats
	results          []resultItem
	resultsList      list.Model
	delegate         resultDelegate
	animOffset       int
	lastSelected     int
	showDiff         bool
	selectedDiff     string
	selectedDiffPath string
}

func newRunModel() runModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := resultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, defaultWidth, defaultHeight)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return runModel{
		width:        defaultWidth,
		height:       defaultHeight,
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m runModel) Init() tea.Cmd {
	return tick(time.Millisecond * 100)
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m, cmd = m.handleMouseMsg(msg)

	case tickMsg:
		return m.handleTickMsg(msg)

	case runInfoMsg:
		m.info = msg.info
		m.completed = 0
		m.progressPercent = 0
		m.rendered = true

	case backupMsg:
		m.backups = append(m.backups, fmt.Sprintf("%s → %s", msg.target, msg.backup))

	case fileResultMsg:
		m = m.handleFileResult(msg)

	case summaryMsg:
		m.finished = true
		m.rendered = true
		m.runID = msg.id
		m.stats = msg.stats
		m.info.DryRun = msg.dryRun
		m.progressPercent = 1
	}

	return m, cmd
}

func (m runModel) handleFileResult(msg fileResultMsg) runModel {
	m.completed++
	m.current = msg.result.path
	m.results = append(m.results, msg.result)

	items := make([]list.Item, 0, len(m.results))
	for _, r := range m.results {
		items = append(items, r)
	}

	m.resultsList.SetItems(items)

	if m.lastSelected == -1 {
		m.lastSelected = 0
	}

	if m.info.Files > 0 {
		m.progressPercent = float64(m.completed) / float64(m.info.Files)
	}

	return m
}

func (m runModel) View() string {
	if !m.rendered {
		return "Preparing scramble run…\n"
	}

	if m.finished {
		return m.viewResults()
	}

	return m.viewProgress()
}

func (m runModel) viewProgress() string {
	mode := ""
	if m.info.DryRun {
		mode = "  •  dry run"
	}

	summary := summaryStyle().Render(fmt.Sprintf(
		"Progress: %s / %s  •  Level: %s  •  Threads: %s%s",
		accent(m.completed),
		accent(m.info.Files),
		accent(int(m.info.Level)),
		accent(m.info.Threads),
		mode,
	))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.progressPercent))

	current := m.current
	if current == "" {
		current = "waiting…"
	}

	currentBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Width(max(m.width-4, 10)).
		Render(lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(truncateToWidth(current, max(m.width-8, 10))))

	parts := []string{titleStyle().Render("Scramble Run"), summary, progressView}
	if len(m.backups) > 0 {
		parts = append(parts, m.renderBackups())
	}

	parts = append(parts, currentBox, footerStyle(m.width).Render("Press q to quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m runModel) renderBackups() string {
	lines := make([]string, 0, len(m.backups))
	for _, backup := range m.backups {
		lines = append(lines, "Backup: "+truncateToWidth(backup, max(m.width-12, 10)))
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Padding(1, 0, 0, 2).
		Render(strings.Join(lines, "\n"))
}

func (m runModel) viewResults() string {
	summaryText := fmt.Sprintf(
		"Scanned: %s  •  Changed: %s  •  Lines: %s  •  Ignored: %s  •  Failed: %s",
		accent(m.stats.FilesScanned),
		accent(m.stats.FilesChanged),
		accent(m.stats.LinesAffected),
		accent(m.stats.FilesIgnored),
		accent(m.stats.FilesFailed),
	)

	if m.stats.SyntaxRegressions > 0 {
		summaryText += fmt.Sprintf("  •  Syntax regressions: %s", accent(m.stats.SyntaxRegressions))
	}

	if m.info.DryRun {
		summaryText += "\nDry run: no files were written"
	}

	if m.runID != "" {
		summaryText += "\nRun " + m.runID
	}

	parts := []string{titleStyle().Render("Scramble Results"), summaryStyle().Render(summaryText)}
	if len(m.backups) > 0 {
		parts = append(parts, m.renderBackups())
	}

	parts = append(parts,
		m.renderResultsBox(),
		footerStyle(m.width).Render("↑/k up • ↓/j down • g/G top/bottom • / filter • enter/space/click diff • q quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m runModel) renderResultsBox() string {
	listWidth := max(m.width-4, 20)
	listHeight := max(m.height-11-m.diffBoxHeight(), 5)

	m.resultsList.SetHeight(listHeight)
	m.resultsList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-10s  %8s  %s", "Status", "Lines", "File"))

	resultsBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.resultsList.View()))

	diffBox := m.renderDiffBox(listWidth)
	if diffBox == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, diffBox)
}

func (m runModel) handleKeyMsg(msg tea.KeyMsg) (runModel, tea.Cmd) {
	filtering := m.resultsList.FilterState() == list.Filtering

	switch {
	case msg.String() == "ctrl+c", msg.String() == "q" && !filtering:
		return m, tea.Quit
	case !m.finished:
		return m, nil
	case !filtering && (msg.String() == "enter" || msg.String() == " "):
		m.toggleSelectedDiff()
		return m, nil
	}

	var cmd tea.Cmd

	m.resultsList, cmd = m.resultsList.Update(msg)
	m.trackSelection()

	return m, cmd
}

func (m runModel) handleMouseMsg(msg tea.MouseMsg) (runModel, tea.Cmd) {
	if !m.finished {
		return m, nil
	}

	var cmd tea.Cmd

	m.resultsList, cmd = m.resultsList.Update(msg)
	m.trackSelection()

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease && m.resultsList.FilterState() != list.Filtering {
		m.toggleSelectedDiff()
	}

	return m, cmd
}

// trackSelection restarts the scroll animation and hides the diff when the cursor moves.
func (m *runModel) trackSelection() {
	if m.resultsList.Index() == m.lastSelected {
		return
	}

	m.lastSelected = m.resultsList.Index()
	m.animOffset = 0
	m.delegate.offset = 0
	m.resultsList.SetDelegate(m.delegate)
	m.showDiff = false
	m.selectedDiff = ""
	m.selectedDiffPath = ""
}

func (m *runModel) toggleSelectedDiff() {
	result, ok := m.resultsList.SelectedItem().(resultItem)
	if !ok {
		return
	}

	detail := strings.TrimSpace(result.diff)
	if detail == "" && result.err != "" {
		detail = "error: " + result.err
	}

	if detail == "" || (m.showDiff && m.selectedDiff == detail) {
		m.showDiff = false
		m.selectedDiff = ""
		m.selectedDiffPath = ""

		return
	}

	m.showDiff = true
	m.selectedDiff = detail
	m.selectedDiffPath = result.path
}

func (m runModel) diffMaxLines() int {
	return min(max(m.height/3, 6), 20)
}

func (m runModel) diffBoxHeight() int {
	if !m.showDiff || m.selectedDiff == "" {
		return 0
	}

	lines := strings.Count(m.selectedDiff, "\n") + 1

	return min(lines, m.diffMaxLines()) + 3
}

func (m runModel) renderDiffBox(width int) string {
	if !m.showDiff || m.selectedDiff == "" {
		return ""
	}

	lines := strings.Split(m.selectedDiff, "\n")
	maxLines := m.diffMaxLines()
	truncated := false

	if len(lines) > maxLines {
		lines = lines[:maxLines-1]
		truncated = true
	}

	contentWidth := max(width-4, 10)

	bodyLines := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		bodyLines = append(bodyLines, renderDiffLine(line, contentWidth))
	}

	if truncated {
		bodyLines = append(bodyLines, "…")
	}

	headerText := "Diff"
	if m.selectedDiffPath != "" {
		headerText = "Diff • " + m.selectedDiffPath
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Render(truncateToWidth(headerText, contentWidth))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinVertical(lipgloss.Left, bodyLines...)))
}

func renderDiffLine(line string, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	switch {
	case strings.HasPrefix(line, "+++"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case strings.HasPrefix(line, "---"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case strings.HasPrefix(line, "@@"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	case strings.HasPrefix(line, "+"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case strings.HasPrefix(line, "-"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	case strings.TrimSpace(line) == "":
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}

	// tabs are drawn so indentation changes stay visible
	return style.Render(truncateToWidth(strings.ReplaceAll(line, "\t", "→   "), width))
}

func (m runModel) handleWindowSize(msg tea.WindowSizeMsg) runModel {
	m.width = msg.Width
	m.height = msg.Height
	m.progressBar.Width = max(m.width-8, 20)

	return m
}

func (m runModel) handleTickMsg(_ tickMsg) (runModel, tea.Cmd) {
	if m.finished && m.resultsList.FilterState() != list.Filtering {
		m.animOffset++
		m.delegate.offset = m.animOffset
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, tick(time.Millisecond * 150)
}
