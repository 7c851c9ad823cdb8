// Package export renders the full journal plus its reading into a single
// downloadable text document.
//
// The core's responsibility ends at producing the string; writing it to a
// file (and naming that file) is the CLI's concern.
package export

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"sovhud/internal/catalog"
	"sovhud/internal/journal"
	"sovhud/internal/narrative"
	"sovhud/internal/reading"
)

const title = "SOVEREIGN ARCHITECT — ACTIVITY LOG"

var separator = strings.Repeat("=", 50)

// Filename returns the conventional export filename for a given day,
// e.g. "sovereign-architect-log-2025-01-05.txt".
func Filename(now time.Time) string {
	return "sovereign-architect-log-" + now.Format("2006-01-02") + ".txt"
}

// Text renders the export document: header, entries newest first, the
// READING block, and a footer with the total entry count. A journal with
// zero entries still produces a well-formed document.
func Text(entries []journal.Entry, cat *catalog.Catalog, now time.Time) string {
	sorted := make([]journal.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(a, b int) bool {
		return journal.ByTimestampAscending(sorted[b], sorted[a])
	})

	var b strings.Builder

	b.WriteString(title + "\n")
	b.WriteString("Exported: " + narrative.FormatTimestamp(now) + "\n")
	b.WriteString(separator + "\n\n")

	lines := make([]string, 0, len(sorted))
	for _, e := range sorted {
		f := narrative.Format(e)
		text := f.Timestamp + "\n" + f.Icon + " " + f.Narrative
		if e.Note != "" {
			text += "\n   \"" + e.Note + "\""
		}
		lines = append(lines, text)
	}
	b.WriteString(strings.Join(lines, "\n\n"))

	b.WriteString("\n\n" + separator + "\n")
	b.WriteString("READING\n")
	b.WriteString(separator + "\n\n")
	b.WriteString(reading.Generate(entries, cat))
	b.WriteString("\n\n" + separator + "\n")
	fmt.Fprintf(&b, "End of log. %d entries total.\n", len(entries))

	return b.String()
}
