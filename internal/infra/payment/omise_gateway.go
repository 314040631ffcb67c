// Package payment talks to the card payment gateway.
package payment

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
	"harvest/internal/errors"
)

const defaultBaseURL = "https://api.omise.co"

// ErrGatewayUnavailable is returned when no gateway is configured.
var ErrGatewayUnavailable = errors.New("payment gateway not configured")

// GatewayError is a structured error document returned by the gateway.
type GatewayError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *GatewayError) Error() string {
	return "payment gateway error " + strconv.Itoa(e.StatusCode) + " " + e.Code + ": " + e.Message
}

type omiseGateway struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     *slog.Logger
}

type chargeResponse struct {
	Object         string `json:"object"`
	ID             string `json:"id"`
	Status         string `json:"status"`
	FailureCode    string `json:"failure_code"`
	FailureMessage string `json:"failure_message"`
}

// NewOmiseGateway builds the gateway client. Deadlines come from the caller's context.
func NewOmiseGateway(cfg *config.PaymentConfig, logger *slog.Logger) service.PaymentGateway {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &omiseGateway{
		baseURL:    baseURL,
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: cfg.Timeout + time.Second},
		logger:     logger,
	}
}

// Charge creates and captures a card charge.
func (g *omiseGateway) Charge(ctx context.Context, req entity.ChargeRequest) (*entity.ChargeResult, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.AmountMinor, 10))
	form.Set("currency", req.Currency)
	form.Set("card", req.Token)
	form.Set("description", req.Description)

	var resp chargeResponse
	if err := g.post(ctx, "/charges", form, &resp); err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "Charge processed",
		slog.String("charge_id", resp.ID),
		slog.String("status", resp.Status),
		slog.Int64("amount_minor", req.AmountMinor),
	)

	failure := resp.FailureMessage
	if failure == "" {
		failure = resp.FailureCode
	}

	return &entity.ChargeResult{
		ChargeID:       resp.ID,
		Status:         resp.Status,
		FailureMessage: failure,
	}, nil
}

// Refund returns part or all of a captured charge.
func (g *omiseGateway) Refund(ctx context.Context, chargeID string, amountMinor int64) error {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))

	var resp struct {
		ID string `json:"id"`
	}
	if err := g.post(ctx, "/charges/"+url.PathEscape(chargeID)+"/refunds", form, &resp); err != nil {
		return err
	}

	g.logger.InfoContext(ctx, "Charge refunded",
		slog.String("charge_id", chargeID),
		slog.String("refund_id", resp.ID),
	)

	return nil
}

func (g *omiseGateway) post(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.WithStack(err)
	}
	req.SetBasicAuth(g.secretKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "payment gateway request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errors.Wrap(err, "failed to read payment gateway response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		gwErr := &GatewayError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(body, gwErr)

		return gwErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "failed to decode payment gateway response")
	}

	return nil
}

type unavailableGateway struct{}

// NewUnavailableGateway is used when payment is not configured; every charge fails.
func NewUnavailableGateway() service.PaymentGateway {
	return unavailableGateway{}
}

func (unavailableGateway) Charge(context.Context, entity.ChargeRequest) (*entity.ChargeResult, error) {
	return nil, ErrGatewayUnavailable
}

func (unavailableGateway) Refund(context.Context, string, int64) error {
	return ErrGatewayUnavailable
}
