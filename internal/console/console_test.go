// ABOUTME: Tests for message formatting and header rendering
// ABOUTME: Captures output via bytes.Buffer; pins width with a fake WidthFunc

package console

import (
	"bytes"
	"strings"
	"testing"
)

func newTestPrinter(width int) (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewPrinter(&buf, func() int { return width }), &buf
}

// ---------------------------------------------------------------------------
// FormatMessages
// ---------------------------------------------------------------------------

func TestFormatMessages_EmptyIsSuccess(t *testing.T) {
	p, buf := newTestPrinter(80)

	if err := p.FormatMessages("", DefaultSuccessPattern); err != nil {
		t.Fatalf("FormatMessages: %v", err)
	}
	if !strings.Contains(buf.String(), "No issues found.") {
		t.Errorf("output = %q; want success notice", buf.String())
	}
}

func TestFormatMessages_NonEmptyPrintedVerbatim(t *testing.T) {
	p, buf := newTestPrinter(80)

	if err := p.FormatMessages("some warning", DefaultSuccessPattern); err != nil {
		t.Fatalf("FormatMessages: %v", err)
	}

	out := buf.String()
	if out != "some warning\n" {
		t.Errorf("output = %q; want %q", out, "some warning\n")
	}
	if strings.Contains(out, "No issues found.") {
		t.Error("success notice printed for non-empty message")
	}
}

// Dot must match newlines so multi-line output can count as success.
func TestFormatMessages_PatternSpansNewlines(t *testing.T) {
	p, buf := newTestPrinter(80)

	if err := p.FormatMessages("ok\nall checks passed\n", `ok.*`); err != nil {
		t.Fatalf("FormatMessages: %v", err)
	}
	if !strings.Contains(buf.String(), "No issues found.") {
		t.Errorf("output = %q; want success notice", buf.String())
	}
}

// The pattern must cover the whole message, not just a prefix.
func TestFormatMessages_PartialMatchIsNotSuccess(t *testing.T) {
	p, buf := newTestPrinter(80)

	if err := p.FormatMessages("ok but also: warning", `ok`); err != nil {
		t.Fatalf("FormatMessages: %v", err)
	}
	if strings.Contains(buf.String(), "No issues found.") {
		t.Error("prefix match treated as success")
	}
}

func TestFormatMessages_InvalidPattern(t *testing.T) {
	p, _ := newTestPrinter(80)

	if err := p.FormatMessages("x", `(`); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

// ---------------------------------------------------------------------------
// PrintHeader
// ---------------------------------------------------------------------------

func TestPrintHeader_BorderByLevel(t *testing.T) {
	t.Setenv(ciWidthEnv, "")

	tests := []struct {
		level  int
		border string
	}{
		{1, "#"},
		{2, "="},
		{3, "-"},
	}

	for _, tt := range tests {
		p, buf := newTestPrinter(40)
		if err := p.PrintHeader("txt", tt.level, ""); err != nil {
			t.Fatalf("PrintHeader level %d: %v", tt.level, err)
		}
		if !strings.Contains(buf.String(), tt.border+tt.border) {
			t.Errorf("level %d output = %q; want %q border fill", tt.level, buf.String(), tt.border)
		}
	}
}

func TestPrintHeader_Level1Uppercases(t *testing.T) {
	t.Setenv(ciWidthEnv, "")

	p, buf := newTestPrinter(20)
	if err := p.PrintHeader("hello", 1, ""); err != nil {
		t.Fatalf("PrintHeader: %v", err)
	}

	want := "\n###### HELLO #######\n\n"
	if buf.String() != want {
		t.Errorf("output = %q; want %q", buf.String(), want)
	}
}

func TestPrintHeader_Level2KeepsCase(t *testing.T) {
	t.Setenv(ciWidthEnv, "")

	p, buf := newTestPrinter(40)
	if err := p.PrintHeader("Mixed Case", 2, ""); err != nil {
		t.Fatalf("PrintHeader: %v", err)
	}
	if !strings.Contains(buf.String(), "Mixed Case") {
		t.Errorf("output = %q; want text unchanged", buf.String())
	}
}

func TestPrintHeader_IconFlanksText(t *testing.T) {
	t.Setenv(ciWidthEnv, "")

	p, buf := newTestPrinter(30)
	if err := p.PrintHeader("go", 2, "🐍"); err != nil {
		t.Fatalf("PrintHeader: %v", err)
	}
	if !strings.Contains(buf.String(), " 🐍 go 🐍 ") {
		t.Errorf("output = %q; want icon on both sides", buf.String())
	}
}

func TestPrintHeader_UnknownLevel(t *testing.T) {
	p, _ := newTestPrinter(40)

	for _, level := range []int{0, 4, -1} {
		if err := p.PrintHeader("txt", level, ""); err == nil {
			t.Errorf("PrintHeader(level=%d): expected error", level)
		}
	}
}

func TestPrintHeader_FixedWidthInCI(t *testing.T) {
	t.Setenv(ciWidthEnv, "true")

	// Terminal width deliberately differs from the CI width.
	p, buf := newTestPrinter(120)
	if err := p.PrintHeader("ci", 1, ""); err != nil {
		t.Fatalf("PrintHeader: %v", err)
	}

	line := strings.Trim(buf.String(), "\n")
	if got := len([]rune(line)); got != 80 {
		t.Errorf("line width = %d; want 80", got)
	}
}

// ---------------------------------------------------------------------------
// center
// ---------------------------------------------------------------------------

func TestCenter_OddGapGoesRight(t *testing.T) {
	t.Parallel()

	got := center("ab", 5, '#')
	if got != "#ab##" {
		t.Errorf("center = %q; want %q", got, "#ab##")
	}
}

func TestCenter_TooNarrowReturnsUnpadded(t *testing.T) {
	t.Parallel()

	got := center("abcdef", 3, '#')
	if got != "abcdef" {
		t.Errorf("center = %q; want %q", got, "abcdef")
	}
}
