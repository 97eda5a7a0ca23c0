// Package buckets renders the per-digit bucket sizes of a counting pass.
package buckets

import (
	"fmt"
	"slices"
	"strings"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/styles"
)

// barRune draws one unit of a bucket bar.
const barRune = "█"

// Chart draws a horizontal histogram of bucket counts.
type Chart struct {
	styles *styles.Styles
	width  int
}

// NewChart creates a bucket chart.
func NewChart(s *styles.Styles) *Chart {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Chart{styles: s, width: 40}
}

// SetWidth sets the maximum bar length.
func (c *Chart) SetWidth(width int) {
	c.width = max(width, 1)
}

// Width returns the maximum bar length.
func (c *Chart) Width() int {
	return c.width
}

// View renders one line per digit bucket: the digit, its bar and its count.
func (c *Chart) View(counts []int) string {
	if len(counts) == 0 {
		return ""
	}

	lines := make([]string, len(counts))
	for digit, n := range counts {
		bar := c.styles.Bar.Render(strings.Repeat(barRune, BarLength(n, slices.Max(counts), c.width)))
		lines[digit] = fmt.Sprintf("%s │%s %s",
			c.styles.Subtitle.Render(fmt.Sprint(digit)), bar, c.styles.Muted.Render(fmt.Sprint(n)))
	}
	return strings.Join(lines, "\n")
}

// BarLength scales n against the largest count so the longest bar is width.
// Non-empty buckets always get at least one unit.
func BarLength(n, largest, width int) int {
	if n <= 0 || largest <= 0 || width <= 0 {
		return 0
	}
	return max(n*width/largest, 1)
}
