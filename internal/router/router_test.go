package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expensetracker/internal/logger"
	"expensetracker/internal/testutil"
	"expensetracker/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return New(testutil.SetupTestDB(t), Options{CORSAllowedOrigins: []string{"*"}})
}

func send(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func listIDs(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	ids := []string{}
	for _, item := range decodeList(t, rec) {
		ids = append(ids, item["id"].(string))
	}
	return ids
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeObject(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "expected error object, got %v", body)
	return errObj["code"].(string)
}

func TestExpenseFlow(t *testing.T) {
	r := setupRouter(t)

	rec := send(r, "POST", "/api/expenses",
		`{"amount":42.50,"date":"2024-03-01","categoryId":"cat-1","description":"Coffee"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeObject(t, rec)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.NotEmpty(t, created["createdAt"])
	assert.NotEmpty(t, created["updatedAt"])

	rec = send(r, "GET", "/api/expenses/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeObject(t, rec)
	assert.Equal(t, 42.5, got["amount"])
	assert.Equal(t, "2024-03-01", got["date"])
	assert.Equal(t, "cat-1", got["categoryId"])
	assert.Equal(t, "Coffee", got["description"])
	assert.Nil(t, got["category"], "unknown category resolves to nothing")

	assert.Equal(t, []string{id},
		listIDs(t, send(r, "GET", "/api/expenses?minAmount=40&maxAmount=50&categoryId=cat-1", "")))
	assert.Empty(t, listIDs(t, send(r, "GET", "/api/expenses?categoryId=cat-2", "")))
	assert.Equal(t, []string{id}, listIDs(t, send(r, "GET", "/api/expenses?description=COF", "")))

	rec = send(r, "DELETE", "/api/expenses/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = send(r, "DELETE", "/api/expenses/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "EXPENSE_NOT_FOUND", errorCode(t, rec))

	rec = send(r, "GET", "/api/expenses/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExpenseWithCategory(t *testing.T) {
	r := setupRouter(t)

	rec := send(r, "POST", "/api/categories", `{"name":"Food","color":"#4CAF50"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	categoryID := decodeObject(t, rec)["id"].(string)

	rec = send(r, "POST", "/api/expenses",
		`{"amount":"12.3","date":"2024-03-02","categoryId":"`+categoryID+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, 12.3, decodeObject(t, rec)["amount"])

	rec = send(r, "GET", "/api/expenses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeList(t, rec)
	require.Len(t, list, 1)
	category, ok := list[0]["category"].(map[string]interface{})
	require.True(t, ok, "expected category backreference, got %v", list[0])
	assert.Equal(t, "Food", category["name"])
	assert.Equal(t, "#4CAF50", category["color"])
}

func TestUpdateExpense(t *testing.T) {
	r := setupRouter(t)

	t.Run("unknown id is 404 regardless of body", func(t *testing.T) {
		for _, body := range []string{
			`{"amount":1,"date":"2024-01-01","categoryId":"c"}`,
			`{}`,
			`not json`,
		} {
			rec := send(r, "PUT", "/api/expenses/does-not-exist", body)
			assert.Equal(t, http.StatusNotFound, rec.Code, body)
		}
	})

	t.Run("changes mutable fields and keeps createdAt", func(t *testing.T) {
		rec := send(r, "POST", "/api/expenses", `{"amount":5,"date":"2024-01-01","categoryId":"c1"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		created := decodeObject(t, rec)
		id := created["id"].(string)

		rec = send(r, "PUT", "/api/expenses/"+id,
			`{"id":"hijack","amount":7.25,"date":"2024-02-02","categoryId":"c2","description":"Lunch"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		updated := decodeObject(t, rec)
		assert.Equal(t, id, updated["id"])
		assert.Equal(t, 7.25, updated["amount"])
		assert.Equal(t, "2024-02-02", updated["date"])
		assert.Equal(t, "c2", updated["categoryId"])
		assert.Equal(t, "Lunch", updated["description"])
		assert.Equal(t, created["createdAt"], updated["createdAt"])
	})

	t.Run("invalid body on existing id is 400", func(t *testing.T) {
		rec := send(r, "POST", "/api/expenses", `{"amount":5,"date":"2024-01-01","categoryId":"c1"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		id := decodeObject(t, rec)["id"].(string)

		rec = send(r, "PUT", "/api/expenses/"+id, `{"amount":5,"date":"01/02/2024","categoryId":"c1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
	})
}

func TestIncomeSourceFilter(t *testing.T) {
	r := setupRouter(t)

	rec := send(r, "POST", "/api/income",
		`{"amount":1000.00,"date":"2024-01-15","source":"Acme Corp","description":"Salary"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decodeObject(t, rec)["id"].(string)

	rec = send(r, "POST", "/api/income", `{"amount":50,"date":"2024-01-20","source":"Freelance"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, q := range []string{"acme", "ACME", "AcMe", "corp"} {
		assert.Equal(t, []string{id}, listIDs(t, send(r, "GET", "/api/income?source="+q, "")), q)
	}
	assert.Len(t, listIDs(t, send(r, "GET", "/api/income", "")), 2)
	assert.Len(t, listIDs(t, send(r, "GET", "/api/income?source=", "")), 2, "blank filter is absent")
	assert.Empty(t, listIDs(t, send(r, "GET", "/api/income?source=acme&endDate=2024-01-14", "")))
}

func TestBadFilters(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name string
		path string
	}{
		{"bad date", "/api/expenses?startDate=2024-13-01"},
		{"bad amount", "/api/expenses?minAmount=ten"},
		{"bad income date", "/api/income?endDate=yesterday"},
		{"bad income amount", "/api/income?maxAmount=1e"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := send(r, "GET", tt.path, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
		})
	}
}

func TestAmountLimits(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"huge exponent body", "POST", "/api/expenses", `{"amount":1e1000000,"date":"2024-01-01","categoryId":"c"}`},
		{"beyond decimal(19,2)", "POST", "/api/income", `{"amount":"100000000000000000000","date":"2024-01-01","source":"s"}`},
		{"three fraction digits", "POST", "/api/expenses", `{"amount":"12.345","date":"2024-01-01","categoryId":"c"}`},
		{"not exact on sqlite", "POST", "/api/income", `{"amount":"12345678901234567.89","date":"2024-01-01","source":"s"}`},
		{"huge exponent filter", "GET", "/api/expenses?minAmount=1e1000000", ""},
		{"tiny exponent filter", "GET", "/api/income?maxAmount=1e-1000000", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := send(r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, "INVALID_INPUT", errorCode(t, rec))
		})
	}

	assert.Empty(t, listIDs(t, send(r, "GET", "/api/income", "")))
	assert.Empty(t, listIDs(t, send(r, "GET", "/api/expenses", "")))

	rec := send(r, "POST", "/api/income", `{"amount":"9999999999999.99","date":"2024-01-01","source":"s"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decodeObject(t, rec)["id"].(string)
	rec = send(r, "GET", "/api/income/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"amount":9999999999999.99`)
}

func TestCategoryCRUD(t *testing.T) {
	r := setupRouter(t)

	rec := send(r, "POST", "/api/categories", `{"name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = send(r, "POST", "/api/categories", `{"name":"Rent","color":"red"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "color must be a hex colour")

	rec = send(r, "POST", "/api/categories", `{"name":"Rent"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decodeObject(t, rec)["id"].(string)

	rec = send(r, "PUT", "/api/categories/"+id, `{"name":"Housing","color":"#123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Housing", decodeObject(t, rec)["name"])

	assert.Equal(t, []string{id}, listIDs(t, send(r, "GET", "/api/categories", "")))

	assert.Equal(t, http.StatusNoContent, send(r, "DELETE", "/api/categories/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, send(r, "GET", "/api/categories/"+id, "").Code)
}

func TestAmbientRoutes(t *testing.T) {
	r := setupRouter(t)

	rec := send(r, "GET", "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeObject(t, rec)["status"])

	rec = send(r, "GET", "/api/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, rec))

	req := httptest.NewRequest("OPTIONS", "/api/expenses", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	out := httptest.NewRecorder()
	r.ServeHTTP(out, req)
	assert.Equal(t, http.StatusNoContent, out.Code)
	assert.Equal(t, "*", out.Header().Get("Access-Control-Allow-Origin"))

	rec = send(r, "GET", "/api/expenses", "")
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = send(r, "GET", "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/expenses")
}
