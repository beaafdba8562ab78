package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hitech-quote/internal/dto"
	"hitech-quote/internal/models"
	"hitech-quote/internal/repository"
	"hitech-quote/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNarrator struct{}

func (fakeNarrator) RecommendationSummary(context.Context, string, []*models.Product) (string, error) {
	return "summary", nil
}

func (fakeNarrator) QuoteNarrative(context.Context, models.CustomerInfo, models.Requirements, []string) (string, error) {
	return "narrative", nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	catalog := repository.NewCatalogRepository("no/such/catalog.csv", zap.NewNop())
	scorer := service.NewMatchScorer(service.DefaultKeywordRules())
	recService := service.NewRecommendationService(
		catalog, scorer, fakeNarrator{}, repository.NewMemoryCache(), time.Minute, zap.NewNop(),
	)
	quoteService := service.NewQuoteService(
		catalog,
		service.NewFlatRatePricing(service.FlatEquipmentPrice),
		fakeNarrator{},
		time.Second,
		zap.NewNop(),
	)

	healthHandler := NewHealthHandler(catalog)
	productHandler := NewProductHandler(catalog, recService, zap.NewNop())
	quoteHandler := NewQuoteHandler(quoteService, zap.NewNop())

	app := fiber.New()
	app.Get("/api/health", healthHandler.Health)
	app.Get("/api/products", productHandler.ListProducts)
	app.Post("/api/products/search", productHandler.SearchProducts)
	app.Post("/api/quote/generate", quoteHandler.GenerateQuote)
	app.Post("/api/quote/send", quoteHandler.SendQuote)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(4), body["products_loaded"])
}

func TestListProducts(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ProductListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, 4, body.Total)
	assert.Equal(t, []string{"ASTM E18", "ISO 6508"}, body.Products[0].Standards)
}

func TestSearchProducts_MissingQueryRejected(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []string{`{}`, `{"query":""}`, `{"query":"   "}`} {
		resp := postJSON(t, app, "/api/products/search", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
}

func TestSearchProducts_OK(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/products/search", `{"query":"hardness"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.SearchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "hardness", body.Query)
	assert.Equal(t, "summary", body.AISummary)
	require.NotEmpty(t, body.Recommendations)
	assert.LessOrEqual(t, len(body.Recommendations), 3)

	top := body.Recommendations[0]
	assert.Equal(t, "HTUS-PR-HT-001", top.ID)
	assert.GreaterOrEqual(t, top.MatchScore, 50)
	assert.NotEmpty(t, top.Accessories)
	assert.Contains(t, top.Reasoning, "hardness")
}

func TestGenerateQuote_MissingSectionsRejected(t *testing.T) {
	app := newTestApp(t)

	cases := map[string]string{
		`{"requirements":{},"selectedProducts":[]}`: "customer",
		`{"customer":{},"selectedProducts":[]}`:     "requirements",
		`{"customer":{},"requirements":{}}`:         "selectedProducts",
	}
	for body, missing := range cases {
		resp := postJSON(t, app, "/api/quote/generate", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var parsed map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		assert.Contains(t, parsed["error"], missing)
	}
}

func TestGenerateQuote_OK(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/quote/generate", `{
		"customer": {"name": "Jordan Blake", "company": "Acme Metallurgy"},
		"requirements": {"material": "steel", "test_type": "hardness"},
		"selectedProducts": ["HTUS-PR-HT-001", "HTUS-UTM-050"]
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.QuoteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Success)
	require.NotNil(t, body.Quote)
	assert.Len(t, body.Quote.LineItems, 2)
	assert.Equal(t, "narrative", body.Quote.Narrative)
	assert.Len(t, body.Quote.Accessories.Mandatory, 2)
}

func TestGenerateQuote_UnknownIDsGiveFewerLineItems(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/quote/generate", `{
		"customer": {"name": "Jordan"},
		"requirements": {},
		"selectedProducts": ["HTUS-PR-HT-001", "GHOST-123"]
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.QuoteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Quote.LineItems, 1)
	assert.Len(t, body.Quote.SelectedProducts, 2)
}

func TestSendQuote(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/quote/send", `{"quote_id":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/api/quote/send", `{"quote_id":"QUO-20260831-ABCDEF01"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.SendQuoteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "QUO-20260831-ABCDEF01", body.Result.QuoteID)
	assert.True(t, body.Result.EmailSent)
	assert.False(t, body.Result.SMSSent)
}
