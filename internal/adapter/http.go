package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/pizza-specials/internal/logger"
	"github.com/MKhiriev/pizza-specials/internal/utils"
	"github.com/MKhiriev/pizza-specials/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type httpSpecialsAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPSpecialsAdapter returns a REST [SpecialsAdapter] for the server at
// address. An address without a scheme is treated as plain http.
func NewHTTPSpecialsAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (SpecialsAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpSpecialsAdapter{
		client: utils.NewHTTPClient(baseURL, requestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSpecialsAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpSpecialsAdapter) Token() string {
	return h.token
}

// List calls GET /.
func (h *httpSpecialsAdapter) List(ctx context.Context) ([]models.PizzaSpecial, error) {
	var specials []models.PizzaSpecial

	resp, err := h.authedRequest(ctx).
		SetResult(&specials).
		Get("/")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return specials, nil
}

// Get calls GET /{id}.
func (h *httpSpecialsAdapter) Get(ctx context.Context, id uuid.UUID) (models.PizzaSpecial, error) {
	var special models.PizzaSpecial

	resp, err := h.authedRequest(ctx).
		SetResult(&special).
		SetPathParam("id", id.String()).
		Get("/{id}")
	if err != nil {
		return models.PizzaSpecial{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PizzaSpecial{}, err
	}

	return special, nil
}

// Create calls POST /.
func (h *httpSpecialsAdapter) Create(ctx context.Context, req models.CreateRequest) (models.CreatedResponse, error) {
	var created models.CreatedResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/")
	if err != nil {
		return models.CreatedResponse{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreatedResponse{}, err
	}

	h.logger.Debug().Str("location", resp.Header().Get("Location")).Msg("special created")
	return created, nil
}

// Update calls PUT /{id}.
func (h *httpSpecialsAdapter) Update(ctx context.Context, id uuid.UUID, req models.UpdateRequest) (models.PizzaSpecial, error) {
	var updated models.PizzaSpecial

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&updated).
		SetPathParam("id", id.String()).
		Put("/{id}")
	if err != nil {
		return models.PizzaSpecial{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PizzaSpecial{}, err
	}

	return updated, nil
}

// Delete calls DELETE /{id}.
func (h *httpSpecialsAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id.String()).
		Delete("/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version calls GET /version.
func (h *httpSpecialsAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpSpecialsAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
