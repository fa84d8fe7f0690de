package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/Danera1903/dna-sequence-converter/internal/analysis"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Colors for modern design
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	surfaceColor   = lipgloss.Color("#1F2937") // Dark gray
	textColor      = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor     = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor    = lipgloss.Color("#374151") // Border gray
)

// Styles
var (
	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Align(lipgloss.Center)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	sequenceStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("#111827")).
			Padding(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	// Translation status styles
	statusOKStyle    = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true)
	statusEmptyStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	labelStyle       = lipgloss.NewStyle().Foreground(mutedColor)
)

type listItem struct {
	record analysis.RecordResult
}

func (i listItem) FilterValue() string {
	return i.record.ID
}

func (i listItem) Title() string {
	return i.record.ID
}

func (i listItem) Description() string {
	// Metadata line shown below the title in the selector list
	desc := i.record.Result
	return fmt.Sprintf("bp: %d    GC: %.2f%%    aa: %d", len(desc.Sequence), desc.GCPercent, proteinLen(desc))
}

func proteinLen(r analysis.Result) int {
	if r.ProteinStatus != "translated" {
		return 0
	}
	return len(r.Protein)
}

type mode int

const (
	modeDNA mode = iota
	modeRNA
	modeProtein
	modeStats
	modeCount
)

func (m mode) String() string {
	switch m {
	case modeDNA:
		return "DNA"
	case modeRNA:
		return "RNA"
	case modeProtein:
		return "Protein"
	case modeStats:
		return "Statistics"
	default:
		return "Unknown"
	}
}

type model struct {
	list          list.Model
	records       []analysis.RecordResult
	currentMode   mode
	showHelp      bool
	width         int
	height        int
	totalRecords  int
	selectedIndex int
}

// cycleMode advances the detail pane to the next view mode, wrapping back
// to DNA after statistics.
func (m model) cycleMode() model {
	m.currentMode = (m.currentMode + 1) % modeCount
	return m
}

func newModel(records []analysis.RecordResult) model {
	items := make([]list.Item, len(records))
	for i, record := range records {
		items[i] = listItem{record: record}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Sequences"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	return model{
		list:         l,
		records:      records,
		currentMode:  modeDNA,
		totalRecords: len(records),
	}
}

func initialModel() model {
	path := "analysis.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	var records []analysis.RecordResult
	if err := json.Unmarshal(data, &records); err != nil {
		log.Fatal(err)
	}
	return newModel(records)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Left panel takes 1/3 of width
		m.list.SetWidth(msg.Width / 3)
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "h":
			m.showHelp = !m.showHelp
			return m, nil

		case "tab", "m":
			return m.cycleMode(), nil

		case "1":
			m.currentMode = modeDNA
			return m, nil

		case "2":
			m.currentMode = modeRNA
			return m, nil

		case "3":
			m.currentMode = modeProtein
			return m, nil

		case "4":
			m.currentMode = modeStats
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.selectedIndex = m.list.Index()
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpModal()
	}

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderLeftPanel(),
		m.renderRightPanel(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatusBar(),
	)
}

func (m model) renderLeftPanel() string {
	return containerStyle.
		Width(m.width/3 - 2).
		Height(m.height - 4).
		Render(m.list.View())
}

func (m model) renderRightPanel() string {
	rightWidth := (m.width * 2) / 3

	if len(m.records) == 0 {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No records available")
	}

	selectedItem := m.list.SelectedItem()
	if selectedItem == nil {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No item selected")
	}

	record := selectedItem.(listItem).record

	title := record.ID
	if record.Description != "" {
		title += " - " + record.Description
	}
	header := titleStyle.Render(title)

	// Metadata line: base count, GC content, translation status
	var statusStyle lipgloss.Style
	if record.ProteinStatus == "translated" {
		statusStyle = statusOKStyle
	} else {
		statusStyle = statusEmptyStyle
	}
	metaStr := labelStyle.Render("Bases: ") + statusStyle.Render(fmt.Sprintf("%d", len(record.Sequence))) +
		labelStyle.Render("    GC: ") + statusStyle.Render(fmt.Sprintf("%.2f%%", record.GCPercent)) +
		labelStyle.Render("    Translation: ") + statusStyle.Render(record.ProteinStatus)

	var content string
	switch m.currentMode {
	case modeDNA:
		content = m.formatSequence(record.Sequence+"\n"+record.Complement, "DNA (5'->3' / complement)")
	case modeRNA:
		content = m.formatSequence(record.RNA, "RNA")
	case modeProtein:
		content = m.formatSequence(record.Protein, "Protein")
	case modeStats:
		content = strings.Join(buildStatLines(record.Result), "\n")
	}

	panelContent := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		metaStr,
		"",
		content,
	)

	return containerStyle.
		Width(rightWidth - 2).
		Height(m.height - 4).
		Render(panelContent)
}

// buildStatLines renders the derived metrics of one result as plain lines,
// sorted so the output is stable between redraws.
func buildStatLines(r analysis.Result) []string {
	lines := []string{fmt.Sprintf("GC content: %.2f%%", r.GCPercent), ""}

	lines = append(lines, "Nucleotide counts:")
	bases := make([]string, 0, len(r.Counts))
	for b := range r.Counts {
		bases = append(bases, b)
	}
	sort.Strings(bases)
	for _, b := range bases {
		lines = append(lines, fmt.Sprintf("  %s: %d", b, r.Counts[b]))
	}

	lines = append(lines, "", fmt.Sprintf("Stop codons in frame: %d", len(r.StopCodons)))
	for _, sc := range r.StopCodons {
		lines = append(lines, fmt.Sprintf("  %s at %d-%d", sc.Codon, sc.Start, sc.End))
	}

	if len(r.Composition) > 0 {
		lines = append(lines, "", fmt.Sprintf("Molecular weight: %.2f u", r.MolecularWeight), "Amino acid composition:")
		residues := make([]string, 0, len(r.Composition))
		for aa := range r.Composition {
			residues = append(residues, aa)
		}
		sort.Strings(residues)
		for _, aa := range residues {
			s := r.Composition[aa]
			lines = append(lines, fmt.Sprintf("  %s: %d (%.2f%%)", aa, s.Count, s.Percent))
		}
	}
	return lines
}

func (m model) formatSequence(sequence, title string) string {
	if sequence == "" {
		return labelStyle.Render(fmt.Sprintf("No %s available", strings.ToLower(title)))
	}

	titleStr := lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true).
		Render(title + ":")

	sequenceContent := sequenceStyle.
		Width(m.width*2/3 - 6). // Account for padding and borders
		Render(sequence)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStr,
		"",
		sequenceContent,
	)
}

func (m model) renderStatusBar() string {
	leftInfo := fmt.Sprintf("%d/%d sequences", m.selectedIndex+1, m.totalRecords)
	centerInfo := fmt.Sprintf("Mode: %s", m.currentMode.String())
	rightInfo := "Press 'h' for help, 'q' to quit"

	totalUsed := len(leftInfo) + len(centerInfo) + len(rightInfo)
	spacing := m.width - totalUsed - 6

	var statusContent string
	if spacing > 0 {
		leftSpacing := spacing / 2
		rightSpacing := spacing - leftSpacing

		statusContent = fmt.Sprintf("%s%s%s%s%s",
			leftInfo,
			strings.Repeat(" ", leftSpacing),
			centerInfo,
			strings.Repeat(" ", rightSpacing),
			rightInfo,
		)
	} else {
		// Fallback for narrow terminals
		statusContent = fmt.Sprintf("%s | %s", leftInfo, centerInfo)
	}

	return statusBarStyle.
		Width(m.width).
		Render(statusContent)
}

func (m model) renderHelpModal() string {
	helpContent := `DNA Sequence Converter - Help

Navigation:
  up/down, j/k  Navigate list
  /             Filter sequences
  Enter         Select sequence

View Modes:
  1             DNA and complement
  2             RNA transcript
  3             Translated protein
  4             Statistics
  tab, m        Cycle modes

General:
  h             Toggle this help
  q, Ctrl+C     Quit application

Current Mode: ` + m.currentMode.String() + `
Total Sequences: ` + fmt.Sprintf("%d", m.totalRecords) + `
`

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(surfaceColor).
		Foreground(textColor).
		Width(60).
		Align(lipgloss.Center)

	modal := modalStyle.Render(helpContent)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
