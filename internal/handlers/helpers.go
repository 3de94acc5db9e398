package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/logger"
	"expensetracker/internal/models"
)

// ErrorDetail is the body of an error response.
type ErrorDetail struct {
	Code    string `json:"code" example:"INVALID_INPUT"`
	Message string `json:"message" example:"Invalid input"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Storage
// constraint violations become 400s. Anything else is logged and reported as a
// generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
	case isConstraintViolation(err):
		appErr = apperrors.Wrap(apperrors.ErrConstraintViolation, err)
	default:
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		appErr = apperrors.ErrInternalServer
	}

	if appErr.Internal != nil {
		logger.Get().Warnw("request failed",
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
		)
	}
	c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
}

func isConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated)
}

func invalidInput(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// queryString returns the raw query parameter, or nil if it was not sent.
func queryString(c *gin.Context, key string) *string {
	v, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	return &v
}

// queryDate parses an optional YYYY-MM-DD query parameter. Blank counts as absent.
func queryDate(c *gin.Context, key string) (*models.Date, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil, nil
	}
	d, err := models.ParseDate(v)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, key+": "+err.Error())
	}
	return &d, nil
}

// queryAmount parses an optional decimal query parameter. Blank counts as absent.
func queryAmount(c *gin.Context, key string) (*models.Amount, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil, nil
	}
	a, err := models.ParseAmount(v)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, key+": "+err.Error())
	}
	return &a, nil
}

// rangeQuery holds the filters expenses and income share.
type rangeQuery struct {
	startDate, endDate   *models.Date
	minAmount, maxAmount *models.Amount
	description          *string
}

func parseRangeQuery(c *gin.Context) (rangeQuery, error) {
	var q rangeQuery
	var err error
	if q.startDate, err = queryDate(c, "startDate"); err != nil {
		return q, err
	}
	if q.endDate, err = queryDate(c, "endDate"); err != nil {
		return q, err
	}
	if q.minAmount, err = queryAmount(c, "minAmount"); err != nil {
		return q, err
	}
	if q.maxAmount, err = queryAmount(c, "maxAmount"); err != nil {
		return q, err
	}
	q.description = queryString(c, "description")
	return q, nil
}
