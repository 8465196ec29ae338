package router

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/infix-calc/internal/apperr"
	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/DjordjeVuckovic/infix-calc/internal/dto"
	"github.com/DjordjeVuckovic/infix-calc/internal/eval"
	"github.com/DjordjeVuckovic/infix-calc/internal/storage"
	"github.com/DjordjeVuckovic/infix-calc/internal/token"
	"github.com/DjordjeVuckovic/infix-calc/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const SourceAPI = "api"

type CalcRouter struct {
	e     *echo.Echo
	calc  *eval.Calculator
	store storage.Store
}

func NewCalcRouter(e *echo.Echo, calc *eval.Calculator, store storage.Store) *CalcRouter {
	return &CalcRouter{
		e:     e,
		calc:  calc,
		store: store,
	}
}

func (r *CalcRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.POST("/tokenize", r.tokenizeHandler)
	g.POST("/validate", r.validateHandler)
	g.POST("/evaluate", r.evaluateHandler)
	g.GET("/evaluations", r.listEvaluationsHandler)
	g.GET("/evaluations/:id", r.getEvaluationHandler)
}

// tokenizeHandler godoc
// @Summary Tokenize an expression
// @Tags calc
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression"
// @Success 200 {object} dto.TokenizeResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/tokenize [post]
func (r *CalcRouter) tokenizeHandler(c echo.Context) error {
	var req dto.ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	tokens, err := r.calc.Tokenize(req.Expression)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TokenizeResponse{
		Expression: req.Expression,
		Tokens:     dto.NewTokens(tokens),
	})
}

// validateHandler godoc
// @Summary Validate an expression
// @Description Rejections are reported in the body with valid=false, not as an error status.
// @Tags calc
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression"
// @Success 200 {object} dto.ValidateResponse
// @Failure 422 {object} map[string]string
// @Router /api/v1/validate [post]
func (r *CalcRouter) validateHandler(c echo.Context) error {
	var req dto.ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	tokens, err := r.calc.Validate(req.Expression)
	resp := dto.ValidateResponse{
		Expression: req.Expression,
		Tokens:     token.Values(tokens),
		Valid:      err == nil,
	}
	if err != nil {
		var ve *apperr.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		resp.Reason = string(ve.Reason)
		resp.Error = ve.Message
	}

	return c.JSON(http.StatusOK, resp)
}

// evaluateHandler godoc
// @Summary Evaluate an expression
// @Description Every call is recorded in the evaluation history, including rejected and failed ones. id is omitted when the history write fails.
// @Tags calc
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Expression"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/evaluate [post]
func (r *CalcRouter) evaluateHandler(c echo.Context) error {
	var req dto.ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	res, calcErr := r.calc.Calculate(req.Expression)

	record := domain.NewEvaluation(req.Expression, res, calcErr)
	record.Source = SourceAPI
	var recordedID *uuid.UUID
	if id, err := r.store.Save(c.Request().Context(), record); err != nil {
		slog.Error("Failed to record evaluation", "error", err, "expression", req.Expression)
	} else {
		recordedID = &id
	}

	if calcErr != nil {
		return calcErr
	}

	return c.JSON(http.StatusOK, dto.EvaluateResponse{
		ID:         recordedID,
		Expression: req.Expression,
		Tokens:     record.Tokens,
		Valid:      res.Valid,
		Value:      dto.NumberValue(res.Value),
	})
}

// listEvaluationsHandler godoc
// @Summary List recorded evaluations
// @Tags history
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.EvaluationPage
// @Failure 400 {object} map[string]string
// @Router /api/v1/evaluations [get]
func (r *CalcRouter) listEvaluationsHandler(c echo.Context) error {
	var page pagination.OffsetRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &page); err != nil {
		return err
	}
	page.Normalize()

	result, err := r.store.List(c.Request().Context(), page)
	if err != nil {
		return err
	}

	items := make([]dto.Evaluation, 0, len(result.Items))
	for _, e := range result.Items {
		items = append(items, dto.NewEvaluation(e))
	}

	return c.JSON(http.StatusOK, dto.EvaluationPage{
		Items:   items,
		Total:   result.Total,
		Page:    result.Page,
		Size:    result.Size,
		HasMore: result.HasMore,
	})
}

// getEvaluationHandler godoc
// @Summary Get a recorded evaluation
// @Tags history
// @Produce json
// @Param id path string true "Evaluation ID"
// @Success 200 {object} dto.Evaluation
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/evaluations/{id} [get]
func (r *CalcRouter) getEvaluationHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid evaluation id")
	}

	e, err := r.store.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewEvaluation(*e))
}
