package domain

// InputMode identifies which representation of a dual percent/amount field
// the user last edited.
type InputMode string

const (
	ModePercent InputMode = "percent"
	ModeAmount  InputMode = "amount"
)

// PercentOrAmount is a dual-representation input: the user supplies either a
// percentage of a base amount or an absolute amount. The percentage is the
// single canonical stored value; the amount is always derived on read, so a
// base-amount change re-derives the amount from the stored percentage and
// repeated mode toggles cannot drift.
type PercentOrAmount struct {
	Percent float64
}

// NewPercentInput builds the input from a percentage.
func NewPercentInput(percent float64) PercentOrAmount {
	return PercentOrAmount{Percent: percent}
}

// NewAmountInput builds the input from an absolute amount over the given
// base, storing the equivalent percentage rounded to 2 decimal places. A
// non-positive base stores zero.
func NewAmountInput(amount, base float64) PercentOrAmount {
	if base <= 0 {
		return PercentOrAmount{}
	}
	return PercentOrAmount{Percent: Round2(amount / base * 100)}
}

// AmountOf derives the absolute amount over the given base, rounded to 2
// decimal places.
func (p PercentOrAmount) AmountOf(base float64) float64 {
	return Round2(base * p.Percent / 100)
}

// PaymentStructure is the deposit/construction percentage split over the
// discounted property value. The delivery share is derived, never stored.
type PaymentStructure struct {
	DepositPercent      float64 `json:"depositPercent"`
	ConstructionPercent float64 `json:"constructionPercent"`
}

// Clamped returns a copy where the construction share has been reduced so
// that deposit plus construction never exceeds 100.
func (ps PaymentStructure) Clamped() PaymentStructure {
	out := ps
	if out.DepositPercent+out.ConstructionPercent > 100 {
		out.ConstructionPercent = 100 - out.DepositPercent
		if out.ConstructionPercent < 0 {
			out.ConstructionPercent = 0
		}
	}
	return out
}

// DeliveryPercent is the residual share due at delivery. It can go negative
// when the deposit share alone exceeds 100; that is surfaced to the caller
// rather than clamped.
func (ps PaymentStructure) DeliveryPercent() float64 {
	c := ps.Clamped()
	return 100 - c.DepositPercent - c.ConstructionPercent
}
