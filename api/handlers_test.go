/*
handlers_test.go - Unit tests for API handlers

Tests for:
- Request defaults reaching the calculator (ConvertSalary, CalculateUKTax)
- Validation failures never reaching the calculator
- Non-finite results mapped to 422
- Batch ordering and limits
*/
package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/warp/salary-engine/api"
	"github.com/warp/salary-engine/config"
	"github.com/warp/salary-engine/period"
	"github.com/warp/salary-engine/uktax"
)

// MockCalculator implements api.Calculator for tests.
type MockCalculator struct {
	mock.Mock
}

func (m *MockCalculator) ConvertSalary(in period.Input) period.Result {
	args := m.Called(in)
	return args.Get(0).(period.Result)
}

func (m *MockCalculator) CalculateUKTax(in uktax.Input) uktax.Breakdown {
	args := m.Called(in)
	return args.Get(0).(uktax.Breakdown)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler(calc api.Calculator) *api.Handler {
	return api.NewHandler(calc, discardLogger(), config.Batch{MaxItems: 3, Concurrency: 2})
}

func post(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// =============================================================================
// PERIOD CONVERSION
// =============================================================================

func TestConvertSalary_AppliesDefaults(t *testing.T) {
	// GIVEN: A request with only an amount
	calc := new(MockCalculator)
	calc.On("ConvertSalary", mock.MatchedBy(func(in period.Input) bool {
		return in.Amount == 25 && in.Period == period.Hourly &&
			in.HoursPerDay == nil && in.DaysPerWeek == nil && in.WeeksPerYear == nil
	})).Return(period.Result{Hourly: 25, Daily: 200, Weekly: 1000, Monthly: 4333.33, Annually: 52000})

	// WHEN: Converting
	rr := post(t, newTestHandler(calc).ConvertSalary, `{"amount": 25}`)

	// THEN: Calculator sees hourly with no schedule, response echoes defaults
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[api.ConvertResponse](t, rr)
	assert.Equal(t, "hourly", resp.Input.Period)
	assert.Equal(t, 8.0, resp.Input.HoursPerDay)
	assert.Equal(t, 5.0, resp.Input.DaysPerWeek)
	assert.Equal(t, 52.0, resp.Input.WeeksPerYear)
	assert.Equal(t, "$52,000.00", resp.Formatted.Annually)
	assert.NotEmpty(t, resp.Metadata.CalculationID)
	assert.NotEmpty(t, resp.Metadata.CalculatedAt)

	calc.AssertExpectations(t)
}

func TestConvertSalary_NormalizesPeriod(t *testing.T) {
	calc := new(MockCalculator)
	calc.On("ConvertSalary", mock.MatchedBy(func(in period.Input) bool {
		return in.Period == period.Monthly
	})).Return(period.Result{})

	rr := post(t, newTestHandler(calc).ConvertSalary, `{"amount": 2500, "period": " Monthly "}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	calc.AssertExpectations(t)
}

func TestConvertSalary_ValidationSkipsCalculator(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		code  string
	}{
		{"zero amount", `{"amount": 0}`, "amount", "INVALID_AMOUNT"},
		{"negative amount", `{"amount": -5}`, "amount", "INVALID_AMOUNT"},
		{"unknown period", `{"amount": 10, "period": "fortnightly"}`, "period", "INVALID_PERIOD"},
		{"hours too high", `{"amount": 10, "hours_per_day": 25}`, "hours_per_day", "OUT_OF_RANGE"},
		{"zero days", `{"amount": 10, "days_per_week": 0}`, "days_per_week", "OUT_OF_RANGE"},
		{"too many weeks", `{"amount": 10, "weeks_per_year": 53}`, "weeks_per_year", "OUT_OF_RANGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := new(MockCalculator)

			rr := post(t, newTestHandler(calc).ConvertSalary, tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			resp := decode[api.ErrorResponse](t, rr)
			assert.Equal(t, tt.field, resp.Field)
			assert.Equal(t, tt.code, resp.Code)
			calc.AssertNotCalled(t, "ConvertSalary", mock.Anything)
		})
	}
}

func TestConvertSalary_MalformedBody(t *testing.T) {
	calc := new(MockCalculator)

	rr := post(t, newTestHandler(calc).ConvertSalary, `{"amount": `)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid request body", decode[api.ErrorResponse](t, rr).Error)
	calc.AssertNotCalled(t, "ConvertSalary", mock.Anything)
}

func TestConvertSalary_NonFiniteResult(t *testing.T) {
	// GIVEN: A calculator that overflows
	calc := new(MockCalculator)
	calc.On("ConvertSalary", mock.Anything).Return(period.Result{Hourly: math.Inf(1)})

	rr := post(t, newTestHandler(calc).ConvertSalary, `{"amount": 1e308, "period": "annually"}`)

	// THEN: 422, never an invalid JSON body
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "Calculation failed", decode[api.ErrorResponse](t, rr).Error)
}

// =============================================================================
// UK TAX
// =============================================================================

func TestCalculateUKTax_AppliesDefaults(t *testing.T) {
	// GIVEN: Only an amount
	calc := new(MockCalculator)
	calc.On("CalculateUKTax", uktax.Input{
		Amount:  30000,
		Period:  uktax.Annually,
		TaxCode: uktax.DefaultTaxCode,
	}).Return(uktax.Breakdown{Result: uktax.Result{TakeHome: 24422.4, Gross: 30000}})

	// WHEN: Calculating
	rr := post(t, newTestHandler(calc).CalculateUKTax, `{"amount": 30000}`)

	// THEN: Annual period and standard tax code were used
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[api.UKTaxResponse](t, rr)
	assert.Equal(t, "annually", resp.Input.Period)
	assert.Equal(t, "1257L", resp.Input.TaxCode)
	assert.Equal(t, "£24,422", resp.Formatted.TakeHome)
	assert.Empty(t, resp.Messages)

	calc.AssertExpectations(t)
}

func TestCalculateUKTax_WarnsAboutIgnoredInputs(t *testing.T) {
	calc := new(MockCalculator)
	calc.On("CalculateUKTax", mock.MatchedBy(func(in uktax.Input) bool {
		return in.TaxCode == "K100" && in.IsScotlandResident
	})).Return(uktax.Breakdown{})

	rr := post(t, newTestHandler(calc).CalculateUKTax,
		`{"amount": 40000, "tax_code": "k100", "is_scotland_resident": true}`)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[api.UKTaxResponse](t, rr)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, api.CodeTaxCodeIgnored, resp.Messages[0].Code)
	assert.Equal(t, api.CodeScottishRatesIgnored, resp.Messages[1].Code)
	assert.Equal(t, api.LevelWarning, resp.Messages[0].Level)
}

func TestCalculateUKTax_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"zero amount", `{"amount": 0}`, "amount"},
		{"weekly period", `{"amount": 100, "period": "weekly"}`, "period"},
		{"negative bonus", `{"amount": 100, "bonus": -1}`, "bonus"},
		{"negative overtime", `{"amount": 100, "overtime": -1}`, "overtime"},
		{"negative benefits", `{"amount": 100, "taxable_benefits": -1}`, "taxable_benefits"},
		{"pension over 100", `{"amount": 100, "pension": 101}`, "pension"},
		{"negative pension", `{"amount": 100, "pension": -1}`, "pension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := new(MockCalculator)

			rr := post(t, newTestHandler(calc).CalculateUKTax, tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.field, decode[api.ErrorResponse](t, rr).Field)
			calc.AssertNotCalled(t, "CalculateUKTax", mock.Anything)
		})
	}
}

func TestCalculateUKTax_NonFiniteResult(t *testing.T) {
	calc := new(MockCalculator)
	calc.On("CalculateUKTax", mock.Anything).
		Return(uktax.Breakdown{Result: uktax.Result{Tax: math.NaN()}})

	rr := post(t, newTestHandler(calc).CalculateUKTax, `{"amount": 100}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

// =============================================================================
// BATCH
// =============================================================================

func TestCalculateUKTaxBatch_KeepsOrder(t *testing.T) {
	// GIVEN: A calculator that echoes the amount as take-home
	calc := new(MockCalculator)
	for _, amount := range []float64{10000, 20000, 30000} {
		amount := amount
		calc.On("CalculateUKTax", mock.MatchedBy(func(in uktax.Input) bool { return in.Amount == amount })).
			Return(uktax.Breakdown{Result: uktax.Result{TakeHome: amount, Gross: amount}})
	}

	// WHEN: Three items are submitted
	rr := post(t, newTestHandler(calc).CalculateUKTaxBatch,
		`{"items": [{"amount": 10000}, {"amount": 20000}, {"amount": 30000}]}`)

	// THEN: Results come back in request order
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[api.BatchUKTaxResponse](t, rr)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, 10000.0, resp.Results[0].Result.TakeHome)
	assert.Equal(t, 20000.0, resp.Results[1].Result.TakeHome)
	assert.Equal(t, 30000.0, resp.Results[2].Result.TakeHome)
	calc.AssertNumberOfCalls(t, "CalculateUKTax", 3)
}

func TestCalculateUKTaxBatch_Limits(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"empty", `{"items": []}`, "EMPTY_BATCH"},
		{"missing", `{}`, "EMPTY_BATCH"},
		{"too many", `{"items": [{"amount": 1}, {"amount": 2}, {"amount": 3}, {"amount": 4}]}`, "BATCH_TOO_LARGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := new(MockCalculator)

			rr := post(t, newTestHandler(calc).CalculateUKTaxBatch, tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			resp := decode[api.ErrorResponse](t, rr)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, "items", resp.Field)
			calc.AssertNotCalled(t, "CalculateUKTax", mock.Anything)
		})
	}
}

func TestCalculateUKTaxBatch_InvalidItemRejectsWholeBatch(t *testing.T) {
	// GIVEN: The second item is invalid
	calc := new(MockCalculator)

	rr := post(t, newTestHandler(calc).CalculateUKTaxBatch,
		`{"items": [{"amount": 10000}, {"amount": 0}]}`)

	// THEN: Nothing is computed and the field path names the item
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decode[api.ErrorResponse](t, rr)
	assert.Equal(t, "items[1].amount", resp.Field)
	assert.Equal(t, "INVALID_AMOUNT", resp.Code)
	calc.AssertNotCalled(t, "CalculateUKTax", mock.Anything)
}
