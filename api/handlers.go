/*
handlers.go - HTTP API handlers for the salary calculators

PURPOSE:
  Exposes the period converter and the UK take-home calculator via REST.
  Handles HTTP request/response, JSON serialization and validation, and
  delegates the arithmetic to the pure calculation packages.

ENDPOINTS:
  Period conversion:
    POST   /api/salary/convert         Convert an amount to all pay periods

  UK tax:
    POST   /api/uk-tax/calculate       Take-home breakdown for one salary
    POST   /api/uk-tax/batch           Take-home breakdowns for many salaries

  Scenarios:
    GET    /api/scenarios              List preset calculations
    GET    /api/scenarios/{id}         Run a preset calculation

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Calc:  The calculators, behind an interface so tests can mock them
  - Log:   Structured logger
  - Batch: Limits for the batch endpoint

REQUEST FLOW:
  1. Decode JSON body
  2. Validate and apply defaults (validation.go)
  3. Call the calculator
  4. Attach formatted strings, advisory messages and metadata
  5. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed JSON, validation errors
  - 404: Unknown scenario
  - 422: Calculation produced a non-finite number
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - validation.go: Validation rules
  - scenarios.go: Preset calculations
  - server.go: Router setup and middleware
*/
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/warp/salary-engine/config"
	"github.com/warp/salary-engine/period"
	"github.com/warp/salary-engine/uktax"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Calculator is the numeric core the handlers delegate to.
type Calculator interface {
	ConvertSalary(in period.Input) period.Result
	CalculateUKTax(in uktax.Input) uktax.Breakdown
}

// Engine is the production Calculator.
type Engine struct{}

func (Engine) ConvertSalary(in period.Input) period.Result   { return period.Convert(in) }
func (Engine) CalculateUKTax(in uktax.Input) uktax.Breakdown { return uktax.CalculateDetailed(in) }

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Calc  Calculator
	Log   *slog.Logger
	Batch config.Batch

	now func() time.Time
}

// NewHandler creates a new handler.
func NewHandler(calc Calculator, log *slog.Logger, batch config.Batch) *Handler {
	return &Handler{
		Calc:  calc,
		Log:   log,
		Batch: batch,
		now:   time.Now,
	}
}

// =============================================================================
// PERIOD CONVERSION
// =============================================================================

// ConvertSalary converts an amount into every pay period.
// POST /api/salary/convert
func (h *Handler) ConvertSalary(w http.ResponseWriter, r *http.Request) {
	const op = "api.ConvertSalary"
	log := h.Log.With(slog.String("op", op), slog.String("request_id", middleware.GetReqID(r.Context())))

	var req ConvertRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Debug("failed to decode request body", slog.String("error", err.Error()))
		writeError(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, err := h.convert(r, req)
	if err != nil {
		h.writeCalcError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

func (h *Handler) convert(r *http.Request, req ConvertRequest) (*ConvertResponse, error) {
	in, err := req.toInput()
	if err != nil {
		return nil, err
	}

	res := h.Calc.ConvertSalary(in)
	if !finite(res.Hourly, res.Daily, res.Weekly, res.Monthly, res.Annually) {
		return nil, ErrNonFiniteResult
	}

	return &ConvertResponse{
		Input:     toConvertInputDTO(in),
		Result:    res,
		Formatted: toPeriodAmountsDTO(res),
		Metadata:  h.metadata(r),
	}, nil
}

// =============================================================================
// UK TAX
// =============================================================================

// CalculateUKTax computes take-home pay for one salary.
// POST /api/uk-tax/calculate
func (h *Handler) CalculateUKTax(w http.ResponseWriter, r *http.Request) {
	const op = "api.CalculateUKTax"
	log := h.Log.With(slog.String("op", op), slog.String("request_id", middleware.GetReqID(r.Context())))

	var req UKTaxRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Debug("failed to decode request body", slog.String("error", err.Error()))
		writeError(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	in, err := req.toInput()
	if err != nil {
		h.writeCalcError(w, r, log, err)
		return
	}

	resp, err := h.ukTax(r, in)
	if err != nil {
		h.writeCalcError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp)
}

// CalculateUKTaxBatch computes take-home pay for several salaries
// concurrently. Every item is validated before any is computed; results keep
// request order.
// POST /api/uk-tax/batch
func (h *Handler) CalculateUKTaxBatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.CalculateUKTaxBatch"
	log := h.Log.With(slog.String("op", op), slog.String("request_id", middleware.GetReqID(r.Context())))

	var req BatchUKTaxRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Debug("failed to decode request body", slog.String("error", err.Error()))
		writeError(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	switch {
	case len(req.Items) == 0:
		h.writeCalcError(w, r, log, invalid("items", ErrEmptyBatch, ""))
		return
	case len(req.Items) > h.Batch.MaxItems:
		h.writeCalcError(w, r, log, invalid("items", ErrBatchTooLarge,
			"at most "+strconv.Itoa(h.Batch.MaxItems)+" items per request"))
		return
	}

	inputs := make([]uktax.Input, len(req.Items))
	for i, item := range req.Items {
		in, err := item.toInput()
		if err != nil {
			h.writeCalcError(w, r, log, withPrefix("items["+strconv.Itoa(i)+"]", err))
			return
		}
		inputs[i] = in
	}

	results := make([]UKTaxResponse, len(inputs))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(h.Batch.Concurrency)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			resp, err := h.ukTax(r, in)
			if err != nil {
				return withPrefix("items["+strconv.Itoa(i)+"]", err)
			}
			results[i] = *resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.writeCalcError(w, r, log, err)
		return
	}

	log.Debug("batch calculated", slog.Int("items", len(results)))
	render.JSON(w, r, BatchUKTaxResponse{
		Results:  results,
		Metadata: h.metadata(r),
	})
}

func (h *Handler) ukTax(r *http.Request, in uktax.Input) (*UKTaxResponse, error) {
	b := h.Calc.CalculateUKTax(in)
	if !finite(b.TakeHome, b.Gross, b.TaxableIncome, b.Tax, b.NationalInsurance) {
		return nil, ErrNonFiniteResult
	}

	return &UKTaxResponse{
		Input:      toUKTaxInputDTO(in),
		Result:     b.Result,
		Deductions: toDeductionsDTO(b),
		Formatted:  toUKTaxFormattedDTO(b),
		Messages:   limitationMessages(in),
		Metadata:   h.metadata(r),
	}, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) metadata(r *http.Request) MetadataDTO {
	return MetadataDTO{
		CalculationID: uuid.New().String(),
		RequestID:     middleware.GetReqID(r.Context()),
		CalculatedAt:  h.now().UTC().Format(time.RFC3339),
	}
}

// writeCalcError maps validation and calculation errors to a status code.
func (h *Handler) writeCalcError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{
			Error:   verr.Err.Error(),
			Code:    errorCode(verr.Err),
			Field:   verr.Field,
			Details: verr.Reason,
		})
	case errors.Is(err, ErrNonFiniteResult):
		log.Warn("calculation overflowed", slog.String("error", err.Error()))
		writeError(w, r, http.StatusUnprocessableEntity, "Calculation failed", err)
	default:
		log.Error("calculation failed", slog.String("error", err.Error()))
		writeError(w, r, http.StatusInternalServerError, "Error calculating salary", err)
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return "INVALID_AMOUNT"
	case errors.Is(err, ErrInvalidPeriod):
		return "INVALID_PERIOD"
	case errors.Is(err, ErrOutOfRange):
		return "OUT_OF_RANGE"
	case errors.Is(err, ErrEmptyBatch):
		return "EMPTY_BATCH"
	case errors.Is(err, ErrBatchTooLarge):
		return "BATCH_TOO_LARGE"
	}
	return ""
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	render.Status(r, status)
	render.JSON(w, r, resp)
}

// ListScenarios returns all preset calculations.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = s.dto()
	}
	render.JSON(w, r, dtos)
}

// RunScenario runs one preset calculation.
// GET /api/scenarios/{id}
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	const op = "api.RunScenario"
	id := chi.URLParam(r, "id")
	log := h.Log.With(slog.String("op", op), slog.String("scenario", id))

	s, ok := findScenario(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "Scenario not found", nil)
		return
	}

	resp, err := h.runScenario(r, s)
	if err != nil {
		h.writeCalcError(w, r, log, err)
		return
	}
	render.JSON(w, r, resp)
}
