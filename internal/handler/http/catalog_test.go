package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/pizza-specials/internal/config"
	"github.com/MKhiriev/pizza-specials/internal/logger"
	"github.com/MKhiriev/pizza-specials/internal/mock"
	"github.com/MKhiriev/pizza-specials/internal/service"
	"github.com/MKhiriev/pizza-specials/internal/store"
	"github.com/MKhiriev/pizza-specials/internal/utils"
	"github.com/MKhiriev/pizza-specials/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// catalog is the whole server stack with real services on top of repo.
type catalog struct {
	router http.Handler
	cfg    *config.StructuredConfig
}

func newCatalog(t *testing.T, repo store.SpecialsRepository) *catalog {
	t.Helper()

	cfg := newTestConfig()
	services, err := service.NewServices(
		&store.Storages{SpecialsRepository: repo},
		cfg,
		models.NewAppBuildInfo("test", "", ""),
		logger.Nop(),
	)
	require.NoError(t, err)

	return &catalog{
		router: NewHandler(services, cfg, logger.Nop()).Init(),
		cfg:    cfg,
	}
}

func (c *catalog) token(t *testing.T, scopes ...string) string {
	t.Helper()

	token, err := utils.GenerateJWTToken(c.cfg.App.TokenIssuer, c.cfg.App.TokenAudience, "tester", scopes, time.Hour, c.cfg.App.TokenSignKey)
	require.NoError(t, err)
	return token.SignedString
}

func (c *catalog) do(method, path, body, bearer string) (int, string) {
	rec := doRequest(c.router, method, path, body, bearer)
	return rec.Code, rec.Body.String()
}

// ─────────────────────────────────────────────
// access control never touches the store
// ─────────────────────────────────────────────

func TestCatalog_RejectedCallersNeverReachTheStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no expectations: any repository call fails the test
	repo := mock.NewMockSpecialsRepository(ctrl)
	c := newCatalog(t, repo)

	id := "/" + uuid.NewString()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		bearer     string
		wantStatus int
	}{
		{"list without token", http.MethodGet, "/", "", "", http.StatusUnauthorized},
		{"get without token", http.MethodGet, id, "", "", http.StatusUnauthorized},
		{"list with a scopeless token", http.MethodGet, "/", "", c.token(t), http.StatusUnauthorized},
		{"get with a scopeless token", http.MethodGet, id, "", c.token(t), http.StatusUnauthorized},
		{"list with write scope only", http.MethodGet, "/", "", c.token(t, "write"), http.StatusUnauthorized},
		{"get with write scope only", http.MethodGet, id, "", c.token(t, "write"), http.StatusUnauthorized},
		{"create with read scope only", http.MethodPost, "/", `{"name":"X","basePrice":5}`, c.token(t, "read"), http.StatusUnauthorized},
		{"update with read scope only", http.MethodPut, id, `{"name":"X","basePrice":5}`, c.token(t, "read"), http.StatusUnauthorized},
		{"delete with read scope only", http.MethodDelete, id, "", c.token(t, "read"), http.StatusForbidden},
		{"token signed with another key", http.MethodGet, "/", "", forgedToken(t), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := c.do(tt.method, tt.path, tt.body, tt.bearer)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func forgedToken(t *testing.T) string {
	t.Helper()

	token, err := utils.GenerateJWTToken("pizza-specials", "", "mallory", []string{"read", "write"}, time.Hour, "not-the-key")
	require.NoError(t, err)
	return token.SignedString
}

// ─────────────────────────────────────────────
// zero id and validation never touch the store
// ─────────────────────────────────────────────

func TestCatalog_ZeroIDAndInvalidBodiesNeverReachTheStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSpecialsRepository(ctrl)
	c := newCatalog(t, repo)
	rw := c.token(t, "read", "write")
	zero := "/" + uuid.Nil.String()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"get zero id", http.MethodGet, zero, "", http.StatusNotFound},
		{"delete zero id", http.MethodDelete, zero, "", http.StatusNotFound},
		{"update zero id", http.MethodPut, zero, `{"name":"X","basePrice":5}`, http.StatusNotFound},
		{"create price 0", http.MethodPost, "/", `{"name":"X","basePrice":0}`, http.StatusBadRequest},
		{"create price 21", http.MethodPost, "/", `{"name":"X","basePrice":21}`, http.StatusBadRequest},
		{"create price 0.99", http.MethodPost, "/", `{"name":"X","basePrice":0.99}`, http.StatusBadRequest},
		{"create price 20.01", http.MethodPost, "/", `{"name":"X","basePrice":20.01}`, http.StatusBadRequest},
		{"create empty name", http.MethodPost, "/", `{"name":"","basePrice":10}`, http.StatusBadRequest},
		{"create without body", http.MethodPost, "/", "", http.StatusBadRequest},
		{"create with trailing data", http.MethodPost, "/", `{"name":"X","basePrice":5}garbage`, http.StatusBadRequest},
		{"create with two objects", http.MethodPost, "/", `{"name":"X","basePrice":5}{"name":"Y","basePrice":6}`, http.StatusBadRequest},
		{"create with oversized body", http.MethodPost, "/", `{"name":"` + strings.Repeat("a", maxRequestBodyBytes) + `","basePrice":5}`, http.StatusRequestEntityTooLarge},
		{"update price 21", http.MethodPut, "/" + uuid.NewString(), `{"name":"X","basePrice":21}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := c.do(tt.method, tt.path, tt.body, rw)
			assert.Equal(t, tt.wantStatus, status)

			var errBody models.ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(body), &errBody))
			assert.NotEmpty(t, errBody.Error)
		})
	}
}

// ─────────────────────────────────────────────
// scenarios against the in-memory catalog
// ─────────────────────────────────────────────

func TestCatalog_SeededSpecialCanBeReadAndDeleted(t *testing.T) {
	x := uuid.New()
	c := newCatalog(t, store.NewInMemorySpecialsRepository(models.PizzaSpecial{
		ID:        x,
		Name:      "Margherita",
		BasePrice: decimal.RequireFromString("9.99"),
	}))
	read := c.token(t, "read")
	write := c.token(t, "write")

	status, body := c.do(http.MethodGet, "/"+x.String(), "", read)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"name":"Margherita"`)
	assert.Contains(t, body, `"basePrice":9.99`)

	status, body = c.do(http.MethodDelete, "/"+x.String(), "", write)
	require.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, body)

	status, _ = c.do(http.MethodGet, "/"+x.String(), "", read)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = c.do(http.MethodDelete, "/"+x.String(), "", write)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = c.do(http.MethodGet, "/", "", read)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, body)
}

func TestCatalog_CreatedSpecialGetsAFreshID(t *testing.T) {
	seed := store.SeedSpecials(utils.NewUUIDGenerator())
	c := newCatalog(t, store.NewInMemorySpecialsRepository(seed...))
	rw := c.token(t, "read", "write")

	seen := make(map[uuid.UUID]struct{}, len(seed))
	for _, special := range seed {
		seen[special.ID] = struct{}{}
	}

	for i := 0; i < 3; i++ {
		rec := doRequest(c.router, http.MethodPost, "/",
			`{"name":"Test","basePrice":15,"description":"","imageUrl":""}`, rw)
		require.Equal(t, http.StatusCreated, rec.Code)

		var created models.CreatedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.NotContains(t, seen, created.ID)
		seen[created.ID] = struct{}{}

		assert.Equal(t, "Test", created.Name)
		assert.Equal(t, "15.00", created.BasePrice)
		assert.Equal(t, "/"+created.ID.String(), rec.Header().Get("Location"))

		status, body := c.do(http.MethodGet, "/"+created.ID.String(), "", rw)
		require.Equal(t, http.StatusOK, status)

		var got models.PizzaSpecial
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Test", got.Name)
		assert.True(t, decimal.NewFromInt(15).Equal(got.BasePrice))
		assert.Empty(t, got.Description)
		assert.Empty(t, got.ImageURL)
	}

	status, body := c.do(http.MethodGet, "/", "", rw)
	require.Equal(t, http.StatusOK, status)

	var all []models.PizzaSpecial
	require.NoError(t, json.Unmarshal([]byte(body), &all))
	assert.Len(t, all, len(seed)+3)
}

func TestCatalog_PriceBoundariesAreInclusive(t *testing.T) {
	c := newCatalog(t, store.NewInMemorySpecialsRepository())
	write := c.token(t, "write")

	for _, price := range []string{"1", "20", "1.00", "19.99"} {
		t.Run(price, func(t *testing.T) {
			status, _ := c.do(http.MethodPost, "/", `{"name":"Edge","basePrice":`+price+`}`, write)
			assert.Equal(t, http.StatusCreated, status)
		})
	}
}

func TestCatalog_UpdateReplacesFields(t *testing.T) {
	x := uuid.New()
	c := newCatalog(t, store.NewInMemorySpecialsRepository(models.PizzaSpecial{
		ID:        x,
		Name:      "Margherita",
		BasePrice: decimal.RequireFromString("9.99"),
	}))
	rw := c.token(t, "read", "write")

	status, _ := c.do(http.MethodPut, "/"+x.String(),
		`{"name":"Margherita DOP","basePrice":12,"description":"San Marzano","imageUrl":"/img/dop.png"}`, rw)
	require.Equal(t, http.StatusOK, status)

	status, body := c.do(http.MethodGet, "/"+x.String(), "", rw)
	require.Equal(t, http.StatusOK, status)

	var got models.PizzaSpecial
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, x, got.ID)
	assert.Equal(t, "Margherita DOP", got.Name)
	assert.True(t, decimal.NewFromInt(12).Equal(got.BasePrice))
	assert.Equal(t, "San Marzano", got.Description)
	assert.Equal(t, "/img/dop.png", got.ImageURL)

	status, _ = c.do(http.MethodPut, "/"+uuid.NewString(), `{"name":"Ghost","basePrice":5}`, rw)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCatalog_MissingScopeIsUnauthorizedExceptOnDelete(t *testing.T) {
	x := uuid.New()
	c := newCatalog(t, store.NewInMemorySpecialsRepository(models.PizzaSpecial{
		ID:        x,
		Name:      "Margherita",
		BasePrice: decimal.RequireFromString("9.99"),
	}))
	read := c.token(t, "read")
	write := c.token(t, "write")

	status, body := c.do(http.MethodGet, "/", "", write)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"error":"required scope is missing: read"}`, body)

	status, _ = c.do(http.MethodGet, "/"+x.String(), "", write)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = c.do(http.MethodPost, "/", `{"name":"Sneaky","basePrice":5}`, read)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = c.do(http.MethodDelete, "/"+x.String(), "", read)
	assert.Equal(t, http.StatusForbidden, status)

	// nothing above changed the catalog
	status, body = c.do(http.MethodGet, "/", "", read)
	require.Equal(t, http.StatusOK, status)

	var all []models.PizzaSpecial
	require.NoError(t, json.Unmarshal([]byte(body), &all))
	require.Len(t, all, 1)
	assert.Equal(t, x, all[0].ID)
}
