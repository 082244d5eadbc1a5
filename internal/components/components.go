// Package components holds the small render-only building blocks of the menu screens.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color styles
var (
	normalStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	selectedStyle = normalStyle.Reverse(true)
	cyanStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
	redStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
)

// TitleComponent renders a title centered on its line
type TitleComponent struct {
	title string
	width int
}

func NewTitleComponent(title string) TitleComponent {
	return TitleComponent{
		title: title,
		width: 80, // Default, will be updated
	}
}

func (t TitleComponent) WithWidth(width int) TitleComponent {
	t.width = width
	return t
}

func (t TitleComponent) SetTitle(title string) TitleComponent {
	t.title = title
	return t
}

func (t TitleComponent) View() string {
	title := truncateWithEllipsis(t.title, t.width)
	return lipgloss.PlaceHorizontal(t.width, lipgloss.Center, normalStyle.Render(title))
}

// OptionListComponent renders a vertical list with one highlighted row
type OptionListComponent struct {
	options  []string
	selected int
	start    int
	end      int
	padding  int
	width    int
}

func NewOptionListComponent(padding int) OptionListComponent {
	return OptionListComponent{
		padding: padding,
		width:   80,
	}
}

func (l OptionListComponent) WithWidth(width int) OptionListComponent {
	l.width = width
	return l
}

func (l OptionListComponent) SetOptions(options []string) OptionListComponent {
	l.options = options
	return l
}

func (l OptionListComponent) SetSelected(index int) OptionListComponent {
	l.selected = index
	return l
}

func (l OptionListComponent) SetVisibleRange(start, end int) OptionListComponent {
	l.start = start
	l.end = end
	return l
}

// View renders the visible rows, one per line, without a trailing newline
func (l OptionListComponent) View() string {
	indent := strings.Repeat(" ", l.padding)
	avail := l.width - l.padding

	var rows []string
	for i := l.start; i < l.end && i < len(l.options); i++ {
		label := truncateWithEllipsis(l.options[i], avail)
		if i == l.selected {
			rows = append(rows, indent+selectedStyle.Render(label))
		} else {
			rows = append(rows, indent+normalStyle.Render(label))
		}
	}
	return strings.Join(rows, "\n")
}

// FooterComponent renders the controls line, or a status message when one is set
type FooterComponent struct {
	controls      string
	statusMessage string
	padding       int
	width         int
}

func NewFooterComponent(controls string, padding int) FooterComponent {
	return FooterComponent{
		controls: controls,
		padding:  padding,
		width:    80,
	}
}

func (f FooterComponent) WithWidth(width int) FooterComponent {
	f.width = width
	return f
}

func (f FooterComponent) SetStatusMessage(message string) FooterComponent {
	f.statusMessage = message
	return f
}

func (f FooterComponent) View() string {
	indent := strings.Repeat(" ", f.padding)
	avail := f.width - f.padding

	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(normalStyle.Render(truncateWithEllipsis(f.controls, avail)))

	if f.statusMessage != "" {
		statusStyle := cyanStyle
		if strings.HasPrefix(f.statusMessage, "ERROR:") {
			statusStyle = redStyle
		}
		b.WriteString("\n\n")
		b.WriteString(indent)
		b.WriteString(statusStyle.Render(truncateWithEllipsis(f.statusMessage, avail)))
	}

	return b.String()
}

// CanvasComponent is a blank screen that text can be placed on by cell
type CanvasComponent struct {
	lines []string
}

func NewCanvasComponent() CanvasComponent {
	return CanvasComponent{}
}

// DrawAt writes text at row/col, padding with blanks as needed
func (c CanvasComponent) DrawAt(row, col int, text string) CanvasComponent {
	lines := make([]string, len(c.lines))
	copy(lines, c.lines)
	for len(lines) <= row {
		lines = append(lines, "")
	}

	line := []rune(lines[row])
	for len(line) < col {
		line = append(line, ' ')
	}
	head := line[:col]
	tail := []rune{}
	if end := col + len([]rune(text)); end < len(line) {
		tail = line[end:]
	}
	lines[row] = string(head) + text + string(tail)

	c.lines = lines
	return c
}

func (c CanvasComponent) Empty() bool {
	return len(c.lines) == 0
}

func (c CanvasComponent) View() string {
	return strings.Join(c.lines, "\n")
}

// truncateWithEllipsis shortens text to maxWidth cells
func truncateWithEllipsis(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	if maxWidth <= 3 {
		return string(runes[:min(maxWidth, len(runes))])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
