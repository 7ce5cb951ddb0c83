package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/solterra/ventas-backend/internal/domain"
	"github.com/solterra/ventas-backend/internal/metrics"
	"github.com/solterra/ventas-backend/internal/service"
)

// BalloonHandler exposes the balloon-payment solver to the console
type BalloonHandler struct {
	solver *service.BalloonService
}

// NewBalloonHandler creates a new BalloonHandler
func NewBalloonHandler(solver *service.BalloonService) *BalloonHandler {
	return &BalloonHandler{solver: solver}
}

// BalloonPlanRequest represents the solve request body. Monetary fields are
// free text; omitted or non-positive annualRatePercent selects the
// zero-interest regime.
type BalloonPlanRequest struct {
	Debt                 string `json:"debt"`
	ProposedInstallment  string `json:"proposedInstallment"`
	TotalMonths          int    `json:"totalMonths"`
	ExtraFrequencyMonths int    `json:"extraFrequencyMonths"`
	AnnualRatePercent    string `json:"annualRatePercent,omitempty"`
}

// BalloonPlanResponse represents the solved plan
type BalloonPlanResponse struct {
	RequiredExtraPayment string `json:"requiredExtraPayment"`
	OccurrenceCount      int    `json:"occurrenceCount"`
	AppliedRatePercent   string `json:"appliedRatePercent"`
	IsFeasible           bool   `json:"isFeasible"`
	Narrative            string `json:"narrative"`
}

// SolveBalloonPlan handles POST /api/v1/balloon-plans/solve. An infeasible
// plan is a normal 200 response with isFeasible false, never an error.
func (h *BalloonHandler) SolveBalloonPlan(c echo.Context) error {
	var req BalloonPlanRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	result := h.solver.Solve(service.BalloonInputs{
		Debt:                 domain.ParseAmount(req.Debt),
		ProposedInstallment:  domain.ParseAmount(req.ProposedInstallment),
		TotalMonths:          req.TotalMonths,
		ExtraFrequencyMonths: req.ExtraFrequencyMonths,
		AnnualRatePercent:    domain.ParseAmount(req.AnnualRatePercent),
	})

	regime := "simple"
	if result.AppliedRatePercent > 0 {
		regime = "present_value"
	}
	feasible := "false"
	if result.IsFeasible {
		feasible = "true"
	}
	metrics.BalloonSolves.WithLabelValues(regime, feasible).Inc()

	log.Debug().
		Bool("feasible", result.IsFeasible).
		Int("occurrences", result.OccurrenceCount).
		Str("regime", regime).
		Msg("Balloon plan solved")

	return c.JSON(http.StatusOK, BalloonPlanResponse{
		RequiredExtraPayment: domain.FormatAmount(result.RequiredExtraPayment),
		OccurrenceCount:      result.OccurrenceCount,
		AppliedRatePercent:   domain.FormatAmount(result.AppliedRatePercent),
		IsFeasible:           result.IsFeasible,
		Narrative:            result.Narrative,
	})
}
