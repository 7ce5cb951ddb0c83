package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/solterra/ventas-backend/internal/domain"
	"github.com/solterra/ventas-backend/internal/metrics"
	"github.com/solterra/ventas-backend/internal/service"
)

// ProjectionHandler exposes the payment schedule projector to the console
type ProjectionHandler struct {
	projector           *service.ProjectorService
	defaultExchangeRate float64
}

// NewProjectionHandler creates a new ProjectionHandler
func NewProjectionHandler(projector *service.ProjectorService, defaultExchangeRate float64) *ProjectionHandler {
	return &ProjectionHandler{
		projector:           projector,
		defaultExchangeRate: defaultExchangeRate,
	}
}

// ExtraPaymentRequest is one extra-payment definition as entered in the form.
// Amount is free text; frequencyMonths 0 means one-time.
type ExtraPaymentRequest struct {
	Amount          string `json:"amount"`
	Description     string `json:"description,omitempty"`
	StartMonth      int    `json:"startMonth"`
	StartYear       int    `json:"startYear"`
	FrequencyMonths int    `json:"frequencyMonths"`
}

// ProjectionRequest represents the projection preview request body. All
// monetary fields are free text straight from the form; malformed text
// degrades to zero rather than failing the projection.
type ProjectionRequest struct {
	PropertyValue       string                `json:"propertyValue"`
	DiscountMode        string                `json:"discountMode,omitempty"` // "percent" (default) or "amount"
	DiscountPercent     string                `json:"discountPercent,omitempty"`
	DiscountAmount      string                `json:"discountAmount,omitempty"`
	Reservation         string                `json:"reservation,omitempty"`
	DepositPercent      string                `json:"depositPercent"`
	ConstructionPercent string                `json:"constructionPercent"`
	StartMonth          int                   `json:"startMonth"`
	StartYear           int                   `json:"startYear"`
	DeliveryMonth       int                   `json:"deliveryMonth"`
	DeliveryYear        int                   `json:"deliveryYear"`
	Frequency           string                `json:"frequency,omitempty"` // "monthly" (default) or "quarterly"
	ExtraPayments       []ExtraPaymentRequest `json:"extraPayments,omitempty"`
	ExchangeRate        string                `json:"exchangeRate,omitempty"`
}

// ScheduleEntryResponse is one dated cash flow in the response schedule
type ScheduleEntryResponse struct {
	Date            string `json:"date"`
	Amount          string `json:"amount"`
	ConvertedAmount string `json:"convertedAmount,omitempty"`
	Description     string `json:"description"`
	Kind            string `json:"kind"`
}

// ProjectionResponse is the scalar breakdown plus the sorted schedule. Each
// run carries a fresh snapshot id so the frontend can discard responses
// superseded by a later keystroke.
type ProjectionResponse struct {
	SnapshotID                  string                  `json:"snapshotId"`
	DiscountedValue             string                  `json:"discountedValue"`
	TotalDeposit                string                  `json:"totalDeposit"`
	SigningBalance              string                  `json:"signingBalance"`
	ConstructionTotal           string                  `json:"constructionTotal"`
	ExtraPaymentsTotal          string                  `json:"extraPaymentsTotal"`
	DeliveryAmount              string                  `json:"deliveryAmount"`
	InstallmentCount            int                     `json:"installmentCount"`
	InstallmentAmount           string                  `json:"installmentAmount"`
	NegativeConstructionBalance bool                    `json:"negativeConstructionBalance"`
	NegativeDeliveryAmount      bool                    `json:"negativeDeliveryAmount"`
	ExchangeRate                string                  `json:"exchangeRate,omitempty"`
	Schedule                    []ScheduleEntryResponse `json:"schedule"`
}

// PreviewProjection handles POST /api/v1/projections/preview
func (h *ProjectionHandler) PreviewProjection(c echo.Context) error {
	var req ProjectionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if errs := validateProjectionRequest(&req); len(errs) > 0 {
		return NewValidationError(c, "Invalid projection request", errs)
	}

	start := time.Now()
	result := h.projector.Project(buildProjectionInputs(&req))
	metrics.ProjectionDuration.Observe(time.Since(start).Seconds())
	metrics.ProjectionRuns.WithLabelValues("http").Inc()

	resp := newProjectionResponse(result, h.exchangeRate(&req))

	log.Debug().
		Str("snapshot_id", resp.SnapshotID).
		Int("entries", len(resp.Schedule)).
		Int("installments", result.InstallmentCount).
		Msg("Projection computed")

	return c.JSON(http.StatusOK, resp)
}

// exchangeRate resolves the display conversion rate for this request
func (h *ProjectionHandler) exchangeRate(req *ProjectionRequest) float64 {
	return resolveExchangeRate(req.ExchangeRate, h.defaultExchangeRate)
}

// resolveExchangeRate picks the display conversion rate: the request value
// wins, then the configured default, else conversion is disabled.
func resolveExchangeRate(raw string, fallback float64) float64 {
	if rate := domain.ParseAmount(raw); rate > 0 {
		return rate
	}
	return fallback
}

// validateProjectionRequest checks the structural fields. Monetary text is
// never rejected here; the domain sanitizer degrades it to zero.
func validateProjectionRequest(req *ProjectionRequest) []ValidationError {
	var errs []ValidationError
	if req.StartMonth < 1 || req.StartMonth > 12 {
		errs = append(errs, ValidationError{Field: "startMonth", Message: domain.ErrInvalidMonth.Error()})
	}
	if req.DeliveryMonth < 1 || req.DeliveryMonth > 12 {
		errs = append(errs, ValidationError{Field: "deliveryMonth", Message: domain.ErrInvalidMonth.Error()})
	}
	if req.Frequency != "" && !domain.PaymentFrequency(req.Frequency).IsValid() {
		errs = append(errs, ValidationError{Field: "frequency", Message: domain.ErrInvalidFrequency.Error()})
	}
	if req.DiscountMode != "" && req.DiscountMode != string(domain.ModePercent) && req.DiscountMode != string(domain.ModeAmount) {
		errs = append(errs, ValidationError{Field: "discountMode", Message: "must be percent or amount"})
	}
	return errs
}

// buildProjectionInputs maps the sanitized request onto the projector inputs
func buildProjectionInputs(req *ProjectionRequest) service.ProjectionInputs {
	propertyValue := domain.ParseAmount(req.PropertyValue)

	var discount domain.PercentOrAmount
	if req.DiscountMode == string(domain.ModeAmount) {
		discount = domain.NewAmountInput(domain.ParseAmount(req.DiscountAmount), propertyValue)
	} else {
		discount = domain.NewPercentInput(domain.ParseAmount(req.DiscountPercent))
	}

	frequency := domain.PaymentFrequency(req.Frequency)
	if !frequency.IsValid() {
		frequency = domain.FrequencyMonthly
	}

	extras := make([]domain.ExtraPaymentDefinition, 0, len(req.ExtraPayments))
	for _, ep := range req.ExtraPayments {
		extras = append(extras, domain.ExtraPaymentDefinition{
			Amount:          ep.Amount,
			Description:     ep.Description,
			StartMonth:      ep.StartMonth,
			StartYear:       ep.StartYear,
			FrequencyMonths: ep.FrequencyMonths,
		})
	}

	return service.ProjectionInputs{
		PropertyValue: propertyValue,
		Discount:      discount,
		Reservation:   domain.ParseAmount(req.Reservation),
		Structure: domain.PaymentStructure{
			DepositPercent:      domain.ParseAmount(req.DepositPercent),
			ConstructionPercent: domain.ParseAmount(req.ConstructionPercent),
		},
		Window: domain.ConstructionWindow{
			StartMonth:    req.StartMonth,
			StartYear:     req.StartYear,
			DeliveryMonth: req.DeliveryMonth,
			DeliveryYear:  req.DeliveryYear,
		},
		Frequency:     frequency,
		ExtraPayments: extras,
	}
}

// newProjectionResponse renders the projection result, tagging it with a
// fresh snapshot id and attaching display-currency amounts when a rate is set
func newProjectionResponse(result *service.ProjectionResult, rate float64) ProjectionResponse {
	schedule := make([]ScheduleEntryResponse, 0, len(result.Schedule))
	for _, e := range result.Schedule {
		entry := ScheduleEntryResponse{
			Date:        e.Date.Format("2006-01-02"),
			Amount:      domain.FormatAmount(e.Amount),
			Description: e.Description,
			Kind:        string(e.Kind),
		}
		if rate > 0 {
			entry.ConvertedAmount = domain.FormatAmount(domain.ConvertAmount(e.Amount, rate))
		}
		schedule = append(schedule, entry)
	}

	resp := ProjectionResponse{
		SnapshotID:                  uuid.NewString(),
		DiscountedValue:             domain.FormatAmount(result.DiscountedValue),
		TotalDeposit:                domain.FormatAmount(result.TotalDeposit),
		SigningBalance:              domain.FormatAmount(result.SigningBalance),
		ConstructionTotal:           domain.FormatAmount(result.ConstructionTotal),
		ExtraPaymentsTotal:          domain.FormatAmount(result.ExtraPaymentsTotal),
		DeliveryAmount:              domain.FormatAmount(result.DeliveryAmount),
		InstallmentCount:            result.InstallmentCount,
		InstallmentAmount:           domain.FormatAmount(result.InstallmentAmount),
		NegativeConstructionBalance: result.NegativeConstructionBalance,
		NegativeDeliveryAmount:      result.NegativeDeliveryAmount,
		Schedule:                    schedule,
	}
	if rate > 0 {
		resp.ExchangeRate = domain.FormatAmount(rate)
	}
	return resp
}
