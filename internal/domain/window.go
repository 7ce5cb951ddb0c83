package domain

import (
	"time"

	"github.com/solterra/ventas-backend/internal/util"
)

// ConstructionWindow is the build-out period of a property sale, expressed as
// month/year pairs. Regular installments accrue from the start month up to
// the calendar month immediately preceding delivery; the delivery month
// itself carries only the final balance.
type ConstructionWindow struct {
	StartMonth    int `json:"startMonth"`
	StartYear     int `json:"startYear"`
	DeliveryMonth int `json:"deliveryMonth"`
	DeliveryYear  int `json:"deliveryYear"`
}

// Validate checks the month fields are calendar months. Year ordering is not
// an error: an inverted window simply spans zero months.
func (w ConstructionWindow) Validate() error {
	if w.StartMonth < 1 || w.StartMonth > 12 || w.DeliveryMonth < 1 || w.DeliveryMonth > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// StartDate returns the first day of the start month.
func (w ConstructionWindow) StartDate() time.Time {
	return util.MonthStart(w.StartYear, time.Month(w.StartMonth))
}

// DeliveryDate returns the first day of the delivery month.
func (w ConstructionWindow) DeliveryDate() time.Time {
	return util.MonthStart(w.DeliveryYear, time.Month(w.DeliveryMonth))
}

// MonthsSpan counts the calendar months strictly before the delivery month,
// floored at 0 when delivery precedes the start.
func (w ConstructionWindow) MonthsSpan() int {
	span := util.MonthsBetween(w.StartDate(), w.DeliveryDate())
	if span < 0 {
		return 0
	}
	return span
}
