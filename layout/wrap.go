package layout

import "strings"

// Wrap breaks text into the fewest greedy lines whose measured width does
// not exceed maxWidth. Words are split on any whitespace and rejoined with
// single spaces. A word wider than maxWidth is placed alone on its own line
// and allowed to overflow. Empty or all-whitespace input yields no lines.
func Wrap(m Measurer, text string, maxWidth float64, style FontStyle, size float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		trial := cur + " " + w
		if m.Width(trial, style, size) <= maxWidth {
			cur = trial
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	return append(lines, cur)
}
