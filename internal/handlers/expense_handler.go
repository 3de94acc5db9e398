package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/filter"
	"expensetracker/internal/models"
	"expensetracker/internal/services"
)

// CategoryResolver looks up the categories expenses are filed under.
type CategoryResolver interface {
	GetCategoriesByIDs(ctx context.Context, ids []string) ([]models.Category, error)
}

// ExpenseHandler handles expense-related requests
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	categories     CategoryResolver
}

// NewExpenseHandler creates a new ExpenseHandler. categories may be nil, in
// which case responses carry no category reference.
func NewExpenseHandler(expenseService services.ExpenseServicer, categories CategoryResolver) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, categories: categories}
}

// ExpenseRequest is the body for creating or replacing an expense.
// Any id, timestamps or category object sent along are ignored.
type ExpenseRequest struct {
	Amount      *models.Amount `json:"amount" binding:"required" swaggertype:"number" example:"42.50"`
	Date        *models.Date   `json:"date" binding:"required" swaggertype:"string" example:"2024-03-05"`
	CategoryID  string         `json:"categoryId" binding:"required,notblank,max=36"`
	Description *string        `json:"description" binding:"omitempty,max=500"`
}

func (r ExpenseRequest) toModel() *models.Expense {
	return &models.Expense{
		Amount:      *r.Amount,
		Date:        *r.Date,
		CategoryID:  r.CategoryID,
		Description: r.Description,
	}
}

// ExpenseResponse is an expense as returned by the API.
type ExpenseResponse struct {
	models.Expense
	Category *models.CategoryRef `json:"category,omitempty"`
}

// ListExpenses returns the expenses matching the optional filters
// @Summary     List expenses
// @Description List expenses, optionally filtered. All filters are combined with AND.
// @Tags        expenses
// @Produce     json
// @Param       startDate   query string false "Earliest date, inclusive (YYYY-MM-DD)"
// @Param       endDate     query string false "Latest date, inclusive (YYYY-MM-DD)"
// @Param       categoryId  query string false "Exact category id"
// @Param       minAmount   query number false "Minimum amount, inclusive"
// @Param       maxAmount   query number false "Maximum amount, inclusive"
// @Param       description query string false "Case-insensitive description substring"
// @Success     200 {array}  ExpenseResponse
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	q, err := parseRangeQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), filter.ExpenseFilter{
		StartDate:   q.startDate,
		EndDate:     q.endDate,
		CategoryID:  queryString(c, "categoryId"),
		MinAmount:   q.minAmount,
		MaxAmount:   q.maxAmount,
		Description: q.description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp, err := h.withCategories(c.Request.Context(), expenses)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetExpense returns a single expense
// @Summary     Get an expense
// @Tags        expenses
// @Produce     json
// @Param       id path string true "Expense ID"
// @Success     200 {object} ExpenseResponse
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if expense == nil {
		respondWithError(c, apperrors.ErrExpenseNotFound)
		return
	}

	resp, err := h.withCategories(c.Request.Context(), []models.Expense{*expense})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp[0])
}

// CreateExpense records a new expense
// @Summary     Create an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} ExpenseResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, invalidInput(err))
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Expense: *expense})
}

// UpdateExpense replaces the mutable fields of an expense
// @Summary     Update an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id      path string         true "Expense ID"
// @Param       request body ExpenseRequest true "New expense values"
// @Success     200 {object} ExpenseResponse
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unknown id is reported as such whatever the body looks like.
		if existing, findErr := h.expenseService.GetExpenseByID(ctx, id); findErr == nil && existing == nil {
			respondWithError(c, apperrors.ErrExpenseNotFound)
			return
		}
		respondWithError(c, invalidInput(err))
		return
	}

	expense, err := h.expenseService.UpdateExpense(ctx, id, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Expense: *expense})
}

// DeleteExpense removes an expense
// @Summary     Delete an expense
// @Tags        expenses
// @Param       id path string true "Expense ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// withCategories attaches each expense's category reference. Expenses whose
// category no longer exists are returned without one.
func (h *ExpenseHandler) withCategories(ctx context.Context, expenses []models.Expense) ([]ExpenseResponse, error) {
	resp := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = ExpenseResponse{Expense: e}
	}
	if h.categories == nil || len(expenses) == 0 {
		return resp, nil
	}

	seen := make(map[string]bool, len(expenses))
	ids := make([]string, 0, len(expenses))
	for _, e := range expenses {
		if !seen[e.CategoryID] {
			seen[e.CategoryID] = true
			ids = append(ids, e.CategoryID)
		}
	}

	categories, err := h.categories.GetCategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	refs := make(map[string]*models.CategoryRef, len(categories))
	for _, cat := range categories {
		refs[cat.ID] = cat.Ref()
	}
	for i := range resp {
		resp[i].Category = refs[resp[i].CategoryID]
	}
	return resp, nil
}
