package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/solterra/ventas-backend/internal/service"
)

func newProjectionTestHandler(defaultRate float64) *ProjectionHandler {
	return NewProjectionHandler(service.NewProjectorService(), defaultRate)
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPreviewProjection_Success(t *testing.T) {
	e := echo.New()
	handler := newProjectionTestHandler(0)

	reqBody := `{
		"propertyValue": "300000",
		"reservation": "10000",
		"depositPercent": "20",
		"constructionPercent": "50",
		"startMonth": 1,
		"startYear": 2025,
		"deliveryMonth": 1,
		"deliveryYear": 2027,
		"frequency": "monthly"
	}`
	c, rec := postJSON(e, "/api/v1/projections/preview", reqBody)

	if err := handler.PreviewProjection(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp ProjectionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if resp.SnapshotID == "" {
		t.Error("Expected a snapshot id")
	}
	if resp.TotalDeposit != "60000.00" {
		t.Errorf("Expected total deposit '60000.00', got %s", resp.TotalDeposit)
	}
	if resp.SigningBalance != "50000.00" {
		t.Errorf("Expected signing balance '50000.00', got %s", resp.SigningBalance)
	}
	if resp.InstallmentCount != 24 {
		t.Errorf("Expected 24 installments, got %d", resp.InstallmentCount)
	}
	if resp.InstallmentAmount != "6250.00" {
		t.Errorf("Expected installment amount '6250.00', got %s", resp.InstallmentAmount)
	}
	if resp.DeliveryAmount != "90000.00" {
		t.Errorf("Expected delivery amount '90000.00', got %s", resp.DeliveryAmount)
	}
	if len(resp.Schedule) != 25 {
		t.Errorf("Expected 25 schedule entries, got %d", len(resp.Schedule))
	}
	if resp.Schedule[len(resp.Schedule)-1].Kind != "delivery" {
		t.Errorf("Expected final entry kind 'delivery', got %s", resp.Schedule[len(resp.Schedule)-1].Kind)
	}
	if resp.Schedule[0].Date != "2025-01-01" {
		t.Errorf("Expected first entry date '2025-01-01', got %s", resp.Schedule[0].Date)
	}
	if resp.ExchangeRate != "" {
		t.Errorf("Expected no exchange rate, got %s", resp.ExchangeRate)
	}
}

func TestPreviewProjection_MalformedMoneyDegradesToZero(t *testing.T) {
	e := echo.New()
	handler := newProjectionTestHandler(0)

	reqBody := `{
		"propertyValue": "not a number",
		"depositPercent": "20",
		"constructionPercent": "50",
		"startMonth": 1,
		"startYear": 2025,
		"deliveryMonth": 1,
		"deliveryYear": 2026
	}`
	c, rec := postJSON(e, "/api/v1/projections/preview", reqBody)

	if err := handler.PreviewProjection(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp ProjectionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.DiscountedValue != "0.00" {
		t.Errorf("Expected discounted value '0.00', got %s", resp.DiscountedValue)
	}
}

func TestPreviewProjection_InvalidMonth(t *testing.T) {
	e := echo.New()
	handler := newProjectionTestHandler(0)

	reqBody := `{
		"propertyValue": "300000",
		"depositPercent": "20",
		"constructionPercent": "50",
		"startMonth": 13,
		"startYear": 2025,
		"deliveryMonth": 1,
		"deliveryYear": 2026
	}`
	c, rec := postJSON(e, "/api/v1/projections/preview", reqBody)

	if err := handler.PreviewProjection(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(problem.Errors) != 1 || problem.Errors[0].Field != "startMonth" {
		t.Errorf("Expected a startMonth validation error, got %+v", problem.Errors)
	}
}

func TestPreviewProjection_InvalidFrequency(t *testing.T) {
	e := echo.New()
	handler := newProjectionTestHandler(0)

	reqBody := `{
		"propertyValue": "300000",
		"depositPercent": "20",
		"constructionPercent": "50",
		"startMonth": 1,
		"startYear": 2025,
		"deliveryMonth": 1,
		"deliveryYear": 2026,
		"frequency": "weekly"
	}`
	c, rec := postJSON(e, "/api/v1/projections/preview", reqBody)

	if err := handler.PreviewProjection(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestPreviewProjection_ExchangeRateConversion(t *testing.T) {
	e := echo.New()
	handler := newProjectionTestHandler(0)

	reqBody := `{
		"propertyValue": "300000",
		"depositPercent": "20",
		"constructionPercent": "50",
		"startMonth": 1,
		"startYear": 2025,
		"deliveryMonth": 1,
		"deliveryYear": 2027,
		"exchangeRate": "25.00"
	}`
	c, rec := postJSON(e, "/api/v1/projections/preview", reqBody)

	if err := handler.PreviewProjection(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var resp ProjectionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.ExchangeRate != "25.00" {
		t.Errorf("Expected exchange rate '25.00', got %s", resp.ExchangeRate)
	}
	// 6250 / 25 = 250.00 per installment in display currency
	if resp.Schedule[0].ConvertedAmount != "250.00" {
		t.Errorf("Expected converted amount '250.00', got %s", resp.Schedule[0].ConvertedAmount)
	}
}

func TestPreviewProjection_DefaultExchangeRateFromConfig(t *testing.T) {
	e := echo.New()
	handler := newProjectionTestHandler(25)

	reqBody := `{
		"propertyValue": "300000",
		"depositPercent": "20",
		"constructionPercent": "50",
		"startMonth": 1,
		"startYear": 2025,
		"deliveryMonth": 1,
		"deliveryYear": 2027
	}`
	c, rec := postJSON(e, "/api/v1/projections/preview", reqBody)

	if err := handler.PreviewProjection(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var resp ProjectionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.ExchangeRate != "25.00" {
		t.Errorf("Expected default exchange rate '25.00', got %s", resp.ExchangeRate)
	}
}

func TestPreviewProjection_DiscountAmountMode(t *testing.T) {
	e := echo.New()
	handler := newProjectionTestHandler(0)

	reqBody := `{
		"propertyValue": "300000",
		"discountMode": "amount",
		"discountAmount": "30,000.00",
		"depositPercent": "20",
		"constructionPercent": "50",
		"startMonth": 1,
		"startYear": 2025,
		"deliveryMonth": 1,
		"deliveryYear": 2027
	}`
	c, rec := postJSON(e, "/api/v1/projections/preview", reqBody)

	if err := handler.PreviewProjection(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var resp ProjectionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.DiscountedValue != "270000.00" {
		t.Errorf("Expected discounted value '270000.00', got %s", resp.DiscountedValue)
	}
}
