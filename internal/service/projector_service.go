package service

import (
	"fmt"

	"github.com/solterra/ventas-backend/internal/domain"
)

// DeliveryEpsilon absorbs floating-point noise in the delivery residual:
// amounts at or below it are treated as zero and omitted from the schedule.
const DeliveryEpsilon = 0.005

// ProjectorService builds the multi-year cash-flow schedule for a property
// sale: deposit breakdown, construction-period installments, extra payments,
// and the final delivery balance, merged into one chronological plan.
type ProjectorService struct{}

// NewProjectorService creates a new ProjectorService
func NewProjectorService() *ProjectorService {
	return &ProjectorService{}
}

// ProjectionInputs bundles everything the projector needs. The struct is
// treated as read-only; Project never mutates it.
type ProjectionInputs struct {
	PropertyValue float64
	Discount      domain.PercentOrAmount
	Reservation   float64
	Structure     domain.PaymentStructure
	Window        domain.ConstructionWindow
	Frequency     domain.PaymentFrequency
	ExtraPayments []domain.ExtraPaymentDefinition
}

// ProjectionResult is the scalar breakdown plus the sorted schedule.
//
// NegativeConstructionBalance flags extras exceeding the construction share
// (installments would have to be negative, so InstallmentAmount is zero);
// NegativeDeliveryAmount flags a structure whose deposit and construction
// shares exceed the discounted value. Neither is clamped away: callers decide
// whether to warn the user.
type ProjectionResult struct {
	DiscountedValue              float64
	TotalDeposit                 float64
	SigningBalance               float64
	ConstructionTotal            float64
	ExtraPaymentsTotal           float64
	RemainingConstructionBalance float64
	DeliveryAmount               float64
	InstallmentCount             int
	InstallmentAmount            float64
	NegativeConstructionBalance  bool
	NegativeDeliveryAmount       bool
	Schedule                     []domain.ScheduleEntry
}

// Project computes the financing plan. It is a pure function of its inputs:
// no state, no I/O, safe for concurrent callers, cheap enough to rerun on
// every keystroke. Degenerate input never fails; it flows into zero-valued or
// flagged fields per the console's never-block-the-user philosophy.
func (s *ProjectorService) Project(inputs ProjectionInputs) *ProjectionResult {
	discountAmount := inputs.Discount.AmountOf(inputs.PropertyValue)
	discountedValue := inputs.PropertyValue - discountAmount
	if discountedValue < 0 {
		discountedValue = 0
	}

	structure := inputs.Structure.Clamped()
	totalDeposit := discountedValue * structure.DepositPercent / 100
	signingBalance := totalDeposit - inputs.Reservation
	if signingBalance < 0 {
		signingBalance = 0
	}
	constructionTotal := discountedValue * structure.ConstructionPercent / 100

	windowStart := inputs.Window.StartDate()
	windowEnd := inputs.Window.DeliveryDate()
	extras := domain.ExpandExtraPayments(inputs.ExtraPayments, windowStart, windowEnd)
	extraPaymentsTotal := domain.TotalByKind(extras, domain.KindExtra)

	remaining := constructionTotal - extraPaymentsTotal
	deliveryAmount := discountedValue - totalDeposit - constructionTotal

	monthsSpan := inputs.Window.MonthsSpan()
	frequency := inputs.Frequency
	if !frequency.IsValid() {
		frequency = domain.FrequencyMonthly
	}
	installmentCount := monthsSpan
	if frequency == domain.FrequencyQuarterly {
		installmentCount = (monthsSpan + 2) / 3
	}

	var installmentAmount float64
	if installmentCount > 0 && remaining > 0 {
		installmentAmount = remaining / float64(installmentCount)
	}

	schedule := make([]domain.ScheduleEntry, 0, installmentCount+len(extras)+1)
	step := frequency.StepMonths()
	for i := 0; i < installmentCount; i++ {
		schedule = append(schedule, domain.ScheduleEntry{
			Date:        windowStart.AddDate(0, i*step, 0),
			Amount:      installmentAmount,
			Description: fmt.Sprintf("Installment %d of %d", i+1, installmentCount),
			Kind:        domain.KindRegular,
		})
	}
	schedule = append(schedule, extras...)
	if deliveryAmount > DeliveryEpsilon {
		schedule = append(schedule, domain.ScheduleEntry{
			Date:        windowEnd,
			Amount:      deliveryAmount,
			Description: "Delivery balance",
			Kind:        domain.KindDelivery,
		})
	}
	domain.SortSchedule(schedule)

	return &ProjectionResult{
		DiscountedValue:              discountedValue,
		TotalDeposit:                 totalDeposit,
		SigningBalance:               signingBalance,
		ConstructionTotal:            constructionTotal,
		ExtraPaymentsTotal:           extraPaymentsTotal,
		RemainingConstructionBalance: remaining,
		DeliveryAmount:               deliveryAmount,
		InstallmentCount:             installmentCount,
		InstallmentAmount:            installmentAmount,
		NegativeConstructionBalance:  remaining < 0,
		NegativeDeliveryAmount:       deliveryAmount < 0,
		Schedule:                     schedule,
	}
}
