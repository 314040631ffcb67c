package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, NewQRCodeService(256, tt.errorCorrectionLevel))
		})
	}
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GeneratePickupQR(uuid.New(), "AB12CD")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	orderID := uuid.New()

	valid, err := json.Marshal(PickupPayload{Type: "pickup", OrderID: orderID.String(), Code: "ZX9K2M"})
	require.NoError(t, err)
	wrongType, err := json.Marshal(PickupPayload{Type: "subscription", OrderID: orderID.String()})
	require.NoError(t, err)
	badID, err := json.Marshal(PickupPayload{Type: "pickup", OrderID: "not-a-uuid"})
	require.NoError(t, err)

	gotID, gotCode, err := service.ParsePickupQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, orderID, gotID)
	assert.Equal(t, "ZX9K2M", gotCode)

	_, _, err = service.ParsePickupQR(string(wrongType))
	assert.ErrorContains(t, err, "invalid QR code type")

	_, _, err = service.ParsePickupQR(string(badID))
	assert.ErrorContains(t, err, "failed to parse order ID")

	_, _, err = service.ParsePickupQR("{broken")
	assert.Error(t, err)
}
