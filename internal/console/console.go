// ABOUTME: Console presentation: colored success/failure notices and section headers
// ABOUTME: Header width follows the terminal, or a fixed 80 columns under CIRCLECI

package console

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// DefaultSuccessPattern matches only an empty message.
const DefaultSuccessPattern = "^$"

// ciWidthEnv is the CI indicator variable; any non-empty value forces
// fixed-width headers.
const ciWidthEnv = "CIRCLECI"

const fixedWidth = 80

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
)

// headerBorders maps a header nesting level to its border fill character.
var headerBorders = map[int]rune{
	1: '#',
	2: '=',
	3: '-',
}

// WidthFunc reports the current terminal width in columns.
type WidthFunc func() int

// Printer renders notices and headers to a writer.
type Printer struct {
	out   io.Writer
	width WidthFunc
}

// NewPrinter returns a Printer writing to out. A nil out defaults to
// os.Stdout; a nil width falls back to terminal detection on stdout.
func NewPrinter(out io.Writer, width WidthFunc) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if width == nil {
		width = terminalWidth
	}
	return &Printer{out: out, width: width}
}

// Printf writes plain formatted text.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Successf prints a green checkmark notice on its own line.
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.out, successStyle.Render("✔ "+fmt.Sprintf(format, args...)))
}

// Failuref prints a red cross notice on its own line.
func (p *Printer) Failuref(format string, args ...any) {
	fmt.Fprintln(p.out, failureStyle.Render("❌ "+fmt.Sprintf(format, args...)))
}

// FormatMessages classifies a block of tool output. If successPattern
// matches the entire message (with . matching newlines), a green
// "No issues found." notice is printed; otherwise the message is
// printed verbatim. An invalid pattern is a compile error.
func (p *Printer) FormatMessages(messages, successPattern string) error {
	re, err := regexp.Compile(`(?s)\A(?:` + successPattern + `)\z`)
	if err != nil {
		return fmt.Errorf("compiling success pattern %q: %w", successPattern, err)
	}

	if re.MatchString(messages) {
		p.Successf("No issues found.")
		return nil
	}
	fmt.Fprintln(p.out, messages)
	return nil
}

// PrintHeader prints a section header: text centered in a border line,
// surrounded by blank lines. Level selects the border character
// (1 '#', 2 '=', 3 '-'); level 1 also uppercases the text. A non-empty
// icon flanks the text on both sides.
func (p *Printer) PrintHeader(text string, level int, icon string) error {
	border, ok := headerBorders[level]
	if !ok {
		return fmt.Errorf("unknown header level %d (want 1, 2, or 3)", level)
	}

	if icon != "" {
		icon += " "
	}

	width := fixedWidth
	if os.Getenv(ciWidthEnv) == "" {
		width = max(p.width()-2*runewidth.StringWidth(icon), 0)
	}

	if level == 1 {
		text = strings.ToUpper(text)
	}

	line := center(" "+icon+text+" "+icon, width, border)
	fmt.Fprintf(p.out, "\n%s\n\n", line)
	return nil
}

// center pads s with fill on both sides to the given display width.
// Odd leftover padding goes to the right.
func center(s string, width int, fill rune) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), gap-left)
}

// terminalWidth detects the stdout terminal width, falling back to the
// fixed width when stdout is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fixedWidth
	}
	return w
}
