package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSpan is the agenda window used when none is provided.
const DefaultSpan = "1w"

var (
	spanPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	spanUnits   = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseSpan parses a day count written as "10d", "2w" or "1w3d" and returns
// the number of days along with a canonical label. Empty input means one
// week.
func ParseSpan(input string) (int, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultSpan
	}

	remaining := strings.ToLower(trimmed)
	total := 0
	for len(remaining) > 0 {
		matches := spanPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("timeutil: invalid span segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("timeutil: invalid span value %q: %w", matches[1], err)
		}
		days, ok := spanUnits[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("timeutil: unsupported span unit %q", matches[2])
		}
		total += value * days
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("timeutil: span must be at least one day")
	}
	return total, FormatSpan(total), nil
}

// FormatSpan renders a day count as weeks and days, e.g. 10 -> "1w3d".
func FormatSpan(days int) string {
	if days <= 0 {
		return "0d"
	}
	var b strings.Builder
	if w := days / 7; w > 0 {
		fmt.Fprintf(&b, "%dw", w)
	}
	if d := days % 7; d > 0 {
		fmt.Fprintf(&b, "%dd", d)
	}
	return b.String()
}
