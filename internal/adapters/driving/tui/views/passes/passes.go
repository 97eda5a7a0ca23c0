// Package passes provides the view that steps through the counting passes
// of a traced sort run.
package passes

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/components/buckets"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/radix-cli/internal/core/domain"
)

// View shows one step of a run: step 0 is the input, step k the sequence
// after pass k.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	chart  *buckets.Chart
	run    *domain.SortRun
	step   int
	width  int
	height int
}

// NewView creates a new pass view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles: s,
		keymap: km,
		chart:  buckets.NewChart(s),
	}
}

// SetRun shows a new run from its input.
func (v *View) SetRun(run *domain.SortRun) {
	v.run = run
	v.step = 0
}

// Run returns the run being shown.
func (v *View) Run() *domain.SortRun {
	return v.run
}

// Step returns the current step.
func (v *View) Step() int {
	return v.step
}

// Steps returns the number of passes in the run.
func (v *View) Steps() int {
	if v.run == nil {
		return 0
	}
	return len(v.run.Trace)
}

// SetDimensions sets the terminal dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.chart.SetWidth(width / 3)
}

// Update handles navigation keys.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || v.run == nil {
		return v, nil
	}

	step := v.step
	switch k := keyMsg.String(); {
	case keymap.Matches(k, v.keymap.Next):
		step = min(step+1, v.Steps())
	case keymap.Matches(k, v.keymap.Prev):
		step = max(step-1, 0)
	case keymap.Matches(k, v.keymap.First):
		step = 0
	case keymap.Matches(k, v.keymap.Last):
		step = v.Steps()
	}

	if step == v.step {
		return v, nil
	}
	v.step = step
	return v, func() tea.Msg { return messages.PassChanged{Step: step} }
}

// View renders the current step.
func (v *View) View() string {
	if v.run == nil {
		return v.styles.Muted.Render("No run to show.")
	}

	width := len(strconv.FormatInt(v.run.Max, 10))
	var b strings.Builder

	if v.step == 0 {
		b.WriteString(v.styles.Subtitle.Render("Input"))
		b.WriteString("\n\n")
		b.WriteString(v.renderValues(v.run.Input, width, -1))
		b.WriteString("\n\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf(
			"max %d, %d pass(es), one per decimal digit", v.run.Max, v.Steps())))
		return b.String()
	}

	pass := v.run.Trace[v.step-1]
	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Pass %d of %d", v.step, v.Steps())))
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  exp %d", pass.Exponent)))
	b.WriteString("\n\n")
	b.WriteString(v.renderValues(pass.Snapshot, width, DigitPosition(pass.Exponent)))
	b.WriteString("\n\n")
	b.WriteString(v.chart.View(pass.Counts))
	if v.step == v.Steps() {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Success.Render("Sorted."))
	}
	return b.String()
}

// renderValues renders values zero-padded to width with digit pos highlighted.
// A pos of -1 highlights nothing.
func (v *View) renderValues(values []int64, width, pos int) string {
	cells := make([]string, len(values))
	for i, value := range values {
		pad, head, digit, tail := SplitDigit(value, width, pos)
		cells[i] = v.styles.Muted.Render(pad) +
			v.styles.Normal.Render(head) +
			v.styles.Digit.Render(digit) +
			v.styles.Normal.Render(tail)
	}
	return lipgloss.NewStyle().Width(max(v.width, 20)).Render(strings.Join(cells, " "))
}

// DigitPosition returns the zero-based decimal position exp selects.
func DigitPosition(exp int64) int {
	pos := 0
	for exp >= 10 {
		exp /= 10
		pos++
	}
	return pos
}

// SplitDigit formats value padded with zeros to width and splits it around
// the digit at pos (0 is the ones digit). Padding zeros left of the digit
// are returned in pad; a padding zero at pos itself is returned as digit.
func SplitDigit(value int64, width, pos int) (pad, head, digit, tail string) {
	s := strconv.FormatInt(value, 10)
	if len(s) < width {
		pad = strings.Repeat("0", width-len(s))
	}
	full := pad + s
	if pos < 0 || pos >= len(full) {
		return pad, s, "", ""
	}

	at := len(full) - 1 - pos
	if at < len(pad) {
		return full[:at], "", full[at : at+1], full[at+1:]
	}
	return pad, full[len(pad):at], full[at : at+1], full[at+1:]
}
