package util

import "time"

// MonthStart returns midnight UTC on the first day of the given month.
func MonthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// MonthsBetween returns the number of calendar months from start to end,
// ignoring the day of month. Negative when end precedes start.
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// MonthSequence returns first and every stepMonths-th month after it, up to
// and including last. A non-positive step yields only the first month.
func MonthSequence(first time.Time, stepMonths int, last time.Time) []time.Time {
	if first.After(last) {
		return nil
	}
	if stepMonths <= 0 {
		return []time.Time{first}
	}
	var seq []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, stepMonths, 0) {
		seq = append(seq, d)
	}
	return seq
}

// OccurrenceOffsets returns the month offsets stepMonths, 2*stepMonths, ...
// capped at totalMonths inclusive. The recurring extra-payment expansion and
// the balloon occurrence months both derive from MonthSequence so the two
// call sites cannot drift apart on boundary handling.
func OccurrenceOffsets(stepMonths, totalMonths int) []int {
	if stepMonths <= 0 || totalMonths <= 0 {
		return nil
	}
	base := MonthStart(2000, time.January)
	seq := MonthSequence(base.AddDate(0, stepMonths, 0), stepMonths, base.AddDate(0, totalMonths, 0))
	offsets := make([]int, len(seq))
	for i, d := range seq {
		offsets[i] = MonthsBetween(base, d)
	}
	return offsets
}
