package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/pizza-specials/internal/service"
	"github.com/MKhiriev/pizza-specials/internal/store"
	"github.com/MKhiriev/pizza-specials/internal/validators"
	"github.com/MKhiriev/pizza-specials/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var margheritaID = uuid.MustParse("0191e9a4-5f0e-7c3a-9c61-1b1e2e3f4a5b")

func margherita() models.PizzaSpecial {
	return models.PizzaSpecial{
		ID:          margheritaID,
		Name:        "Margherita",
		BasePrice:   decimal.RequireFromString("9.99"),
		Description: "Tomato, mozzarella, basil",
		ImageURL:    "/img/margherita.png",
	}
}

// expectCaller makes the mocked auth layer accept "good-token" for a caller
// holding scopes.
func expectCaller(m mockedServices, scopes ...string) {
	m.auth.EXPECT().ParseToken(gomock.Any(), "good-token").Return(tokenWithScopes("tester", scopes...), nil)
}

// ─────────────────────────────────────────────
// list
// ─────────────────────────────────────────────

func TestListSpecials(t *testing.T) {
	tests := []struct {
		name       string
		stored     []models.PizzaSpecial
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "returns every special",
			stored:     []models.PizzaSpecial{margherita()},
			wantStatus: http.StatusOK,
			wantBody: `[{"id":"0191e9a4-5f0e-7c3a-9c61-1b1e2e3f4a5b","name":"Margherita","basePrice":9.99,` +
				`"description":"Tomato, mozzarella, basil","imageUrl":"/img/margherita.png"}]`,
		},
		{
			name:       "empty catalog is an empty array",
			stored:     nil,
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "service failure hides details",
			serviceErr: errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newMockedRouter(t, newTestConfig())
			expectCaller(m, "read")
			m.auth.EXPECT().Authorize(gomock.Any(), "read").Return(nil)
			m.specials.EXPECT().ListSpecials(gomock.Any()).Return(tt.stored, tt.serviceErr)

			rec := doRequest(router, http.MethodGet, "/", "", "good-token")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

// ─────────────────────────────────────────────
// get
// ─────────────────────────────────────────────

func TestGetSpecial(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, m := newMockedRouter(t, newTestConfig())
		expectCaller(m, "read")
		m.auth.EXPECT().Authorize(gomock.Any(), "read").Return(nil)
		m.specials.EXPECT().GetSpecial(gomock.Any(), margheritaID).Return(margherita(), nil)

		rec := doRequest(router, http.MethodGet, "/"+margheritaID.String(), "", "good-token")

		require.Equal(t, http.StatusOK, rec.Code)
		var got models.PizzaSpecial
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, margheritaID, got.ID)
		assert.True(t, decimal.RequireFromString("9.99").Equal(got.BasePrice))
	})

	t.Run("absent", func(t *testing.T) {
		router, m := newMockedRouter(t, newTestConfig())
		expectCaller(m, "read")
		m.auth.EXPECT().Authorize(gomock.Any(), "read").Return(nil)
		m.specials.EXPECT().GetSpecial(gomock.Any(), margheritaID).
			Return(models.PizzaSpecial{}, fmt.Errorf("%w: id %s", store.ErrSpecialNotFound, margheritaID))

		rec := doRequest(router, http.MethodGet, "/"+margheritaID.String(), "", "good-token")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id never reaches the service", func(t *testing.T) {
		router, m := newMockedRouter(t, newTestConfig())
		expectCaller(m, "read")
		m.auth.EXPECT().Authorize(gomock.Any(), "read").Return(nil)

		rec := doRequest(router, http.MethodGet, "/not-a-uuid", "", "good-token")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing read scope before the id is even parsed", func(t *testing.T) {
		router, m := newMockedRouter(t, newTestConfig())
		expectCaller(m, "write")
		m.auth.EXPECT().Authorize(gomock.Any(), "read").Return(fmt.Errorf("%w: read", service.ErrForbidden))

		rec := doRequest(router, http.MethodGet, "/not-a-uuid", "", "good-token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

// ─────────────────────────────────────────────
// create
// ─────────────────────────────────────────────

func TestCreateSpecial_Success(t *testing.T) {
	router, m := newMockedRouter(t, newTestConfig())
	expectCaller(m, "write")
	m.auth.EXPECT().Authorize(gomock.Any(), "write").Return(nil)
	m.specials.EXPECT().CreateSpecial(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req models.CreateRequest) (models.PizzaSpecial, error) {
			assert.Equal(t, "Margherita", req.Name)
			assert.True(t, decimal.NewFromInt(10).Equal(req.BasePrice))
			created := margherita()
			created.BasePrice = req.BasePrice
			return created, nil
		})

	rec := doRequest(router, http.MethodPost, "/", `{"name":"Margherita","basePrice":10}`, "good-token")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/"+margheritaID.String(), rec.Header().Get("Location"))
	assert.JSONEq(t, `{"id":"0191e9a4-5f0e-7c3a-9c61-1b1e2e3f4a5b","name":"Margherita","basePrice":"10.00",`+
		`"description":"Tomato, mozzarella, basil","imageUrl":"/img/margherita.png"}`, rec.Body.String())
}

func TestCreateSpecial_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error // nil means the service must not be called
		wantStatus int
	}{
		{
			name:       "malformed JSON",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "price as text",
			body:       `{"name":"X","basePrice":"ten"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "validation failure",
			body:       `{"name":"","basePrice":10}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrValidationFailed, validators.ErrEmptyName),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate id",
			body:       `{"name":"X","basePrice":10}`,
			serviceErr: store.ErrSpecialAlreadyExists,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newMockedRouter(t, newTestConfig())
			expectCaller(m, "write")
			m.auth.EXPECT().Authorize(gomock.Any(), "write").Return(nil)
			if tt.serviceErr != nil {
				m.specials.EXPECT().CreateSpecial(gomock.Any(), gomock.Any()).Return(models.PizzaSpecial{}, tt.serviceErr)
			}

			rec := doRequest(router, http.MethodPost, "/", tt.body, "good-token")

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestCreateSpecial_ReadScopeIsNotEnough(t *testing.T) {
	router, m := newMockedRouter(t, newTestConfig())
	expectCaller(m, "read")
	m.auth.EXPECT().Authorize(gomock.Any(), "write").Return(fmt.Errorf("%w: write", service.ErrForbidden))

	// the body is garbage on purpose: the scope check comes first
	rec := doRequest(router, http.MethodPost, "/", `{`, "good-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"required scope is missing: write"}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), `error="insufficient_scope"`)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), `scope="write"`)
}

// ─────────────────────────────────────────────
// update
// ─────────────────────────────────────────────

func TestUpdateSpecial(t *testing.T) {
	t.Run("replaces fields", func(t *testing.T) {
		router, m := newMockedRouter(t, newTestConfig())
		expectCaller(m, "write")
		m.auth.EXPECT().Authorize(gomock.Any(), "write").Return(nil)

		updated := margherita()
		updated.Name = "Margherita DOP"
		m.specials.EXPECT().UpdateSpecial(gomock.Any(), margheritaID, models.UpdateRequest{
			Name:      "Margherita DOP",
			BasePrice: decimal.RequireFromString("11.5"),
		}).Return(updated, nil)

		rec := doRequest(router, http.MethodPut, "/"+margheritaID.String(),
			`{"name":"Margherita DOP","basePrice":11.5}`, "good-token")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Margherita DOP"`)
	})

	t.Run("absent special", func(t *testing.T) {
		router, m := newMockedRouter(t, newTestConfig())
		expectCaller(m, "write")
		m.auth.EXPECT().Authorize(gomock.Any(), "write").Return(nil)
		m.specials.EXPECT().UpdateSpecial(gomock.Any(), margheritaID, gomock.Any()).
			Return(models.PizzaSpecial{}, store.ErrSpecialNotFound)

		rec := doRequest(router, http.MethodPut, "/"+margheritaID.String(), `{"name":"X","basePrice":5}`, "good-token")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, m := newMockedRouter(t, newTestConfig())
		expectCaller(m, "write")
		m.auth.EXPECT().Authorize(gomock.Any(), "write").Return(nil)

		rec := doRequest(router, http.MethodPut, "/"+margheritaID.String(), `[1,2]`, "good-token")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// ─────────────────────────────────────────────
// delete
// ─────────────────────────────────────────────

func TestDeleteSpecial(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		router, m := newMockedRouter(t, newTestConfig())
		expectCaller(m, "write")
		m.auth.EXPECT().Authorize(gomock.Any(), "write").Return(nil)
		m.specials.EXPECT().DeleteSpecial(gomock.Any(), margheritaID).Return(nil)

		rec := doRequest(router, http.MethodDelete, "/"+margheritaID.String(), "", "good-token")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("read scope is forbidden", func(t *testing.T) {
		router, m := newMockedRouter(t, newTestConfig())
		expectCaller(m, "read")
		m.auth.EXPECT().Authorize(gomock.Any(), "write").Return(fmt.Errorf("%w: write", service.ErrForbidden))

		rec := doRequest(router, http.MethodDelete, "/"+margheritaID.String(), "", "good-token")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"error":"caller lacks the required scope: write"}`, rec.Body.String())
	})

	t.Run("anonymous caller", func(t *testing.T) {
		router, m := newMockedRouter(t, newTestConfig())
		expectCaller(m)
		m.auth.EXPECT().Authorize(gomock.Any(), "write").Return(service.ErrUnauthorized)

		rec := doRequest(router, http.MethodDelete, "/"+margheritaID.String(), "", "good-token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestSpecialIDFromPath_MalformedIsNotFound(t *testing.T) {
	router, m := newMockedRouter(t, newTestConfig())
	expectCaller(m, "write")
	m.auth.EXPECT().Authorize(gomock.Any(), "write").Return(nil)

	rec := doRequest(router, http.MethodDelete, "/42", "", "good-token")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), store.ErrSpecialNotFound.Error())
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "single object", body: `{"name":"Margherita","basePrice":9.99}`},
		{name: "trailing whitespace", body: "{\"name\":\"Margherita\"}\n\t "},
		{name: "empty body", body: "", wantErr: ErrInvalidJSON},
		{name: "trailing garbage", body: `{"name":"Margherita"} x`, wantErr: ErrInvalidJSON},
		{name: "trailing brace", body: `{"name":"Margherita"}}`, wantErr: ErrInvalidJSON},
		{name: "second object", body: `{"name":"A"}{"name":"B"}`, wantErr: ErrInvalidJSON},
		{name: "over the limit", body: `{"name":"` + strings.Repeat("a", maxRequestBodyBytes) + `"}`, wantErr: ErrRequestTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			var got models.CreateRequest
			err := decodeBody(rec, req, &got)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "Margherita", got.Name)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
