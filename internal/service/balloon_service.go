package service

import (
	"fmt"
	"math"

	"github.com/solterra/ventas-backend/internal/domain"
	"github.com/solterra/ventas-backend/internal/util"
)

// BalloonService solves backward for the recurring extra payment that,
// combined with a proposed regular installment, fully amortizes a target debt
// over a fixed term. With no interest rate every unit of currency is
// time-equivalent; with a positive annual rate the solve runs on present
// values with an ordinary-annuity discount.
type BalloonService struct{}

// NewBalloonService creates a new BalloonService
func NewBalloonService() *BalloonService {
	return &BalloonService{}
}

// BalloonInputs is the plan to solve. AnnualRatePercent at or below zero
// selects the zero-interest regime.
type BalloonInputs struct {
	Debt                 float64
	ProposedInstallment  float64
	TotalMonths          int
	ExtraFrequencyMonths int
	AnnualRatePercent    float64
}

// BalloonResult reports the solved plan. An infeasible plan is a normal
// outcome with a descriptive narrative, not an error.
type BalloonResult struct {
	RequiredExtraPayment float64
	OccurrenceCount      int
	AppliedRatePercent   float64
	IsFeasible           bool
	Narrative            string
}

// Solve determines the recurring extra payment closing the gap between the
// debt and what the installments alone recover. Intermediate arithmetic stays
// in float64; only the final payment is rounded to 2 decimals so rounding
// error does not compound across the discount-factor sum.
func (s *BalloonService) Solve(inputs BalloonInputs) *BalloonResult {
	if inputs.Debt <= 0 || inputs.ProposedInstallment <= 0 || inputs.TotalMonths <= 0 || inputs.ExtraFrequencyMonths <= 0 {
		return &BalloonResult{
			IsFeasible: false,
			Narrative:  "debt, installment, term, and extra-payment frequency must all be positive",
		}
	}

	offsets := util.OccurrenceOffsets(inputs.ExtraFrequencyMonths, inputs.TotalMonths)
	if len(offsets) == 0 {
		return &BalloonResult{
			IsFeasible: false,
			Narrative: fmt.Sprintf("an extra payment every %d months does not fit inside a %d-month term",
				inputs.ExtraFrequencyMonths, inputs.TotalMonths),
		}
	}

	if inputs.AnnualRatePercent <= 0 {
		return s.solveSimple(inputs, offsets)
	}
	return s.solvePresentValue(inputs, offsets)
}

// solveSimple treats all currency as time-equivalent: the deficit is the debt
// minus the plain sum of the proposed installments.
func (s *BalloonService) solveSimple(inputs BalloonInputs, offsets []int) *BalloonResult {
	collected := inputs.ProposedInstallment * float64(inputs.TotalMonths)
	deficit := inputs.Debt - collected
	if deficit <= 0 {
		return &BalloonResult{
			RequiredExtraPayment: 0,
			OccurrenceCount:      len(offsets),
			IsFeasible:           true,
			Narrative:            "the regular installments alone cover the debt; no extra payment is needed",
		}
	}

	required := domain.Round2(deficit / float64(len(offsets)))
	return &BalloonResult{
		RequiredExtraPayment: required,
		OccurrenceCount:      len(offsets),
		IsFeasible:           true,
		Narrative: fmt.Sprintf("%d extra payments of %s every %d months cover the remaining %s",
			len(offsets), domain.FormatAmount(required), inputs.ExtraFrequencyMonths, domain.FormatAmount(deficit)),
	}
}

// solvePresentValue discounts every cash flow to today at the monthly rate
// derived from the annual rate, then sizes the extra payment against the
// present-value deficit.
func (s *BalloonService) solvePresentValue(inputs BalloonInputs, offsets []int) *BalloonResult {
	monthlyRate := inputs.AnnualRatePercent / 100 / 12

	// Ordinary annuity factor for the proposed installment stream
	annuityFactor := (1 - math.Pow(1+monthlyRate, -float64(inputs.TotalMonths))) / monthlyRate
	pvInstallments := inputs.ProposedInstallment * annuityFactor

	pvDeficit := inputs.Debt - pvInstallments
	if pvDeficit <= 0 {
		return &BalloonResult{
			RequiredExtraPayment: 0,
			OccurrenceCount:      len(offsets),
			AppliedRatePercent:   inputs.AnnualRatePercent,
			IsFeasible:           true,
			Narrative:            "the regular installments alone amortize the debt at the given rate; no extra payment is needed",
		}
	}

	var discountFactorSum float64
	for _, m := range offsets {
		discountFactorSum += math.Pow(1+monthlyRate, -float64(m))
	}

	required := domain.Round2(pvDeficit / discountFactorSum)
	return &BalloonResult{
		RequiredExtraPayment: required,
		OccurrenceCount:      len(offsets),
		AppliedRatePercent:   inputs.AnnualRatePercent,
		IsFeasible:           true,
		Narrative: fmt.Sprintf("%d extra payments of %s every %d months amortize the debt at %s%% annual interest",
			len(offsets), domain.FormatAmount(required), inputs.ExtraFrequencyMonths, domain.FormatAmount(inputs.AnnualRatePercent)),
	}
}
