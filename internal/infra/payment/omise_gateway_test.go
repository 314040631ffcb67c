package payment

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"
	"harvest/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) *omiseGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gw := NewOmiseGateway(&config.PaymentConfig{
		BaseURL:   server.URL,
		SecretKey: "skey_test",
		Timeout:   2 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return gw.(*omiseGateway)
}

func TestOmiseGateway_Charge(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/charges", r.URL.Path)
		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "skey_test", user)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "12550", r.PostForm.Get("amount"))
		assert.Equal(t, "thb", r.PostForm.Get("currency"))
		assert.Equal(t, "tokn_test", r.PostForm.Get("card"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"charge","id":"chrg_1","status":"successful"}`))
	})

	result, err := gw.Charge(t.Context(), entity.ChargeRequest{
		AmountMinor: 12550,
		Currency:    "thb",
		Token:       "tokn_test",
		Description: "Order for listing x",
	})

	require.NoError(t, err)
	assert.True(t, result.Captured())
	assert.Equal(t, "chrg_1", result.ChargeID)
}

func TestOmiseGateway_ChargeDeclined(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"object":"charge","id":"chrg_2","status":"failed","failure_code":"insufficient_fund"}`))
	})

	result, err := gw.Charge(t.Context(), entity.ChargeRequest{AmountMinor: 100, Currency: "thb", Token: "t"})

	require.NoError(t, err)
	assert.False(t, result.Captured())
	assert.Equal(t, "insufficient_fund", result.FailureMessage)
}

func TestOmiseGateway_ErrorDocument(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"object":"error","code":"authentication_failure","message":"authentication failed"}`))
	})

	_, err := gw.Charge(t.Context(), entity.ChargeRequest{AmountMinor: 100, Currency: "thb", Token: "t"})

	var gwErr *GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, http.StatusUnauthorized, gwErr.StatusCode)
	assert.Equal(t, "authentication_failure", gwErr.Code)
}

func TestOmiseGateway_Refund(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/charges/chrg_1/refunds", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "500", r.PostForm.Get("amount"))
		_, _ = w.Write([]byte(`{"object":"refund","id":"rfnd_1"}`))
	})

	require.NoError(t, gw.Refund(t.Context(), "chrg_1", 500))
}

func TestUnavailableGateway(t *testing.T) {
	gw := NewUnavailableGateway()

	_, err := gw.Charge(t.Context(), entity.ChargeRequest{})
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	assert.ErrorIs(t, gw.Refund(t.Context(), "chrg", 1), ErrGatewayUnavailable)
}
