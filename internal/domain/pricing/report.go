package pricing

import "sort"

// ReportEntry is one row of the yearly price report consumed by the PDF
// export collaborator.
type ReportEntry struct {
	Assignment *Assignment
	Nights     int
}

// YearReport filters assignments to those starting within the given calendar
// year and returns them sorted ascending by start date. An assignment that
// starts on December 31 of the prior year is excluded even when it spills
// into the requested year.
func YearReport(assignments []*Assignment, year int) []ReportEntry {
	entries := make([]ReportEntry, 0, len(assignments))
	for _, a := range assignments {
		if a.Range.Start.Year() != year {
			continue
		}
		entries = append(entries, ReportEntry{Assignment: a, Nights: a.Range.Nights()})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Assignment.Range.Start.Before(entries[j].Assignment.Range.Start)
	})
	return entries
}
