package domain

import (
	"strings"
	"time"

	"github.com/solterra/ventas-backend/internal/util"
)

// DefaultExtraPaymentDescription labels expanded occurrences whose
// definition carries no description of its own.
const DefaultExtraPaymentDescription = "Extra payment"

// ExtraPaymentDefinition describes a one-time or recurring payment outside
// the regular installment cadence. Amount is free text straight from the
// console form; blank, malformed, or non-positive text contributes nothing.
// FrequencyMonths 0 denotes a one-time payment, any positive value means
// "repeat every N months".
type ExtraPaymentDefinition struct {
	Amount          string `json:"amount"`
	Description     string `json:"description"`
	StartMonth      int    `json:"startMonth"`
	StartYear       int    `json:"startYear"`
	FrequencyMonths int    `json:"frequencyMonths"`
}

// ExpandExtraPayments produces the concrete dated occurrences of each
// definition that fall inside [windowStart, windowEnd] inclusive.
// Occurrences outside the window are dropped, never clamped to a boundary. A
// recurring definition whose first occurrences predate the window still
// contributes the later ones that land inside it.
func ExpandExtraPayments(defs []ExtraPaymentDefinition, windowStart, windowEnd time.Time) []ScheduleEntry {
	entries := make([]ScheduleEntry, 0)
	for _, def := range defs {
		amount := ParseAmount(def.Amount)
		if amount <= 0 {
			continue
		}

		description := strings.TrimSpace(def.Description)
		if description == "" {
			description = DefaultExtraPaymentDescription
		}

		first := util.MonthStart(def.StartYear, time.Month(def.StartMonth))

		var dates []time.Time
		if def.FrequencyMonths <= 0 {
			dates = []time.Time{first}
		} else {
			dates = util.MonthSequence(first, def.FrequencyMonths, windowEnd)
		}

		for _, d := range dates {
			if d.Before(windowStart) || d.After(windowEnd) {
				continue
			}
			entries = append(entries, ScheduleEntry{
				Date:        d,
				Amount:      amount,
				Description: description,
				Kind:        KindExtra,
			})
		}
	}
	return entries
}
