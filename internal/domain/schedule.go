package domain

import (
	"sort"
	"time"
)

// EntryKind classifies a cash-flow schedule entry.
type EntryKind string

const (
	KindRegular  EntryKind = "regular"
	KindExtra    EntryKind = "extra"
	KindDelivery EntryKind = "delivery"
)

// PaymentFrequency is the cadence of regular construction installments.
type PaymentFrequency string

const (
	FrequencyMonthly   PaymentFrequency = "monthly"
	FrequencyQuarterly PaymentFrequency = "quarterly"
)

// IsValid reports whether the frequency is a supported cadence.
func (f PaymentFrequency) IsValid() bool {
	return f == FrequencyMonthly || f == FrequencyQuarterly
}

// StepMonths returns the number of calendar months between consecutive
// installments at this frequency.
func (f PaymentFrequency) StepMonths() int {
	if f == FrequencyQuarterly {
		return 3
	}
	return 1
}

// ScheduleEntry is one dated cash flow in a financing plan.
type ScheduleEntry struct {
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Kind        EntryKind `json:"kind"`
}

// SortSchedule orders entries ascending by date. The sort is stable; relative
// order of same-date entries from different streams is preserved as appended.
func SortSchedule(entries []ScheduleEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}

// TotalByKind sums the amounts of all entries of the given kind.
func TotalByKind(entries []ScheduleEntry, kind EntryKind) float64 {
	var total float64
	for _, e := range entries {
		if e.Kind == kind {
			total += e.Amount
		}
	}
	return total
}
