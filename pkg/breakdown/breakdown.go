// Package breakdown extracts a probability breakdown from free-form
// diagnostic text. The upstream text is model output and is not guaranteed
// to be well-formed, so parsing is lenient: an absent or empty breakdown is
// a normal outcome, not an error.
package breakdown

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// headerPrefix marks the start of the section, matched case-insensitively
// against the trimmed line.
const headerPrefix = "probability breakdown:"

// maxScanLines bounds the lookahead after the header so a malformed reply
// cannot drag the scan into unrelated trailing sections.
const maxScanLines = 14

// entryRegex matches bullets like "- Overheating/thermal: 15%". The lazy
// label group ends at the last colon before the percentage, so labels may
// themselves contain colons.
var entryRegex = regexp.MustCompile(`^-+\s*(.+?):\s*(\d{1,3})%`)

// Entry is one (cause label, percentage) pair.
type Entry struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Breakdown is a probability distribution sorted descending by value.
type Breakdown struct {
	Top Entry   `json:"top"`
	All []Entry `json:"all"`
}

// Sum returns the total of all values. A well-formed distribution sums to
// 100, but that is not enforced here; callers may use this to flag
// inconsistent model output.
func (b *Breakdown) Sum() int {
	total := 0
	for _, entry := range b.All {
		total += entry.Value
	}
	return total
}

// Parse scans text for a probability breakdown section and returns it sorted
// descending by value, ties keeping their original order. It returns nil when
// no section is found or the section yields no entries.
func Parse(text string) *Breakdown {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), headerPrefix) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}

	var entries []Entry
	for i := start + 1; i < len(lines) && i <= start+maxScanLines; i++ {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, "-") {
			break
		}

		match := entryRegex.FindStringSubmatch(line)
		if match == nil {
			// Formatting noise inside the bullet list is skipped, not fatal.
			continue
		}
		value, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Label: strings.TrimSpace(match[1]), Value: value})
	}
	if len(entries) == 0 {
		return nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	return &Breakdown{Top: entries[0], All: entries}
}
