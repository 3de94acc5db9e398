package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/filter"
	"expensetracker/internal/models"
	"expensetracker/internal/services"
)

// IncomeHandler handles income-related requests
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// IncomeRequest is the body for creating or replacing an income record.
type IncomeRequest struct {
	Amount      *models.Amount `json:"amount" binding:"required" swaggertype:"number" example:"1000.00"`
	Date        *models.Date   `json:"date" binding:"required" swaggertype:"string" example:"2024-03-01"`
	Source      string         `json:"source" binding:"required,notblank,max=255"`
	Description *string        `json:"description" binding:"omitempty,max=500"`
}

func (r IncomeRequest) toModel() *models.Income {
	return &models.Income{
		Amount:      *r.Amount,
		Date:        *r.Date,
		Source:      r.Source,
		Description: r.Description,
	}
}

// ListIncome returns the income records matching the optional filters
// @Summary     List income
// @Description List income, optionally filtered. All filters are combined with AND.
// @Tags        income
// @Produce     json
// @Param       startDate   query string false "Earliest date, inclusive (YYYY-MM-DD)"
// @Param       endDate     query string false "Latest date, inclusive (YYYY-MM-DD)"
// @Param       source      query string false "Case-insensitive source substring"
// @Param       minAmount   query number false "Minimum amount, inclusive"
// @Param       maxAmount   query number false "Maximum amount, inclusive"
// @Param       description query string false "Case-insensitive description substring"
// @Success     200 {array}  models.Income
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income [get]
func (h *IncomeHandler) ListIncome(c *gin.Context) {
	q, err := parseRangeQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.ListIncome(c.Request.Context(), filter.IncomeFilter{
		StartDate:   q.startDate,
		EndDate:     q.endDate,
		Source:      queryString(c, "source"),
		MinAmount:   q.minAmount,
		MaxAmount:   q.maxAmount,
		Description: q.description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, income)
}

// GetIncome returns a single income record
// @Summary     Get an income record
// @Tags        income
// @Produce     json
// @Param       id path string true "Income ID"
// @Success     200 {object} models.Income
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/{id} [get]
func (h *IncomeHandler) GetIncome(c *gin.Context) {
	income, err := h.incomeService.GetIncomeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if income == nil {
		respondWithError(c, apperrors.ErrIncomeNotFound)
		return
	}
	c.JSON(http.StatusOK, income)
}

// CreateIncome records a new income entry
// @Summary     Create an income record
// @Tags        income
// @Accept      json
// @Produce     json
// @Param       request body IncomeRequest true "Income details"
// @Success     201 {object} models.Income
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	income, err := h.incomeService.CreateIncome(c.Request.Context(), req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, income)
}

// UpdateIncome replaces the mutable fields of an income record
// @Summary     Update an income record
// @Tags        income
// @Accept      json
// @Produce     json
// @Param       id      path string        true "Income ID"
// @Param       request body IncomeRequest true "New income values"
// @Success     200 {object} models.Income
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/{id} [put]
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if existing, findErr := h.incomeService.GetIncomeByID(ctx, id); findErr == nil && existing == nil {
			respondWithError(c, apperrors.ErrIncomeNotFound)
			return
		}
		respondWithError(c, invalidInput(err))
		return
	}

	income, err := h.incomeService.UpdateIncome(ctx, id, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, income)
}

// DeleteIncome removes an income record
// @Summary     Delete an income record
// @Tags        income
// @Param       id path string true "Income ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Income not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	if err := h.incomeService.DeleteIncome(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
