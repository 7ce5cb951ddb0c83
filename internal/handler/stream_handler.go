package handler

import (
	"net/http"
	"time"

	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/solterra/ventas-backend/internal/metrics"
	"github.com/solterra/ventas-backend/internal/service"
)

// StreamHandler serves the projection recompute stream: each inbound message
// is a projection request and each outbound message the recomputed plan. The
// console keeps one connection open per financing form and sends a message
// per keystroke.
type StreamHandler struct {
	projector           *service.ProjectorService
	defaultExchangeRate float64
	allowedOrigins      map[string]bool
	upgrader            ws.Upgrader
}

// StreamError is sent in place of a projection when an inbound message fails
// validation. The connection stays open.
type StreamError struct {
	Type   string            `json:"type"`
	Detail string            `json:"detail"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// NewStreamHandler creates a new StreamHandler
func NewStreamHandler(projector *service.ProjectorService, defaultExchangeRate float64, allowedOrigins []string) *StreamHandler {
	originMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		originMap[origin] = true
	}

	h := &StreamHandler{
		projector:           projector,
		defaultExchangeRate: defaultExchangeRate,
		allowedOrigins:      originMap,
	}

	h.upgrader = ws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}

	return h
}

// checkOrigin validates the request origin against allowed origins
func (h *StreamHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// Allow requests with no Origin header (e.g., same-origin or non-browser clients)
		return true
	}

	if h.allowedOrigins[origin] {
		return true
	}

	log.Warn().
		Str("origin", origin).
		Msg("Projection stream rejected: origin not allowed")
	return false
}

// HandleProjections handles GET /ws/projections
func (h *StreamHandler) HandleProjections(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Error().Err(err).Msg("Projection stream upgrade failed")
		return err
	}
	defer conn.Close()

	log.Info().
		Str("client_ip", c.RealIP()).
		Msg("Projection stream connected")

	for {
		var req ProjectionRequest
		if err := conn.ReadJSON(&req); err != nil {
			if ws.IsUnexpectedCloseError(err, ws.CloseNormalClosure, ws.CloseGoingAway) {
				log.Warn().Err(err).Msg("Projection stream read failed")
			}
			break
		}

		if errs := validateProjectionRequest(&req); len(errs) > 0 {
			if err := conn.WriteJSON(StreamError{Type: ErrorTypeValidation, Detail: "Invalid projection request", Errors: errs}); err != nil {
				break
			}
			continue
		}

		start := time.Now()
		result := h.projector.Project(buildProjectionInputs(&req))
		metrics.ProjectionDuration.Observe(time.Since(start).Seconds())
		metrics.ProjectionRuns.WithLabelValues("websocket").Inc()
		metrics.StreamMessages.Inc()

		rate := resolveExchangeRate(req.ExchangeRate, h.defaultExchangeRate)
		if err := conn.WriteJSON(newProjectionResponse(result, rate)); err != nil {
			log.Warn().Err(err).Msg("Projection stream write failed")
			break
		}
	}

	log.Info().
		Str("client_ip", c.RealIP()).
		Msg("Projection stream disconnected")

	return nil
}
