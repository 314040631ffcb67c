// Package qrcode renders pickup QR codes.
package qrcode

import (
	"encoding/json"
	"strings"

	"harvest/internal/domain/service"
	"harvest/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const pickupType = "pickup"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PickupPayload is the JSON document encoded in a pickup QR code.
type PickupPayload struct {
	Type    string `json:"type"`
	OrderID string `json:"order_id"`
	Code    string `json:"code"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR renders the order's pickup payload as PNG.
func (s *qrcodeService) GeneratePickupQR(orderID uuid.UUID, confirmationCode string) ([]byte, error) {
	jsonData, err := json.Marshal(PickupPayload{
		Type:    pickupType,
		OrderID: orderID.String(),
		Code:    confirmationCode,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal pickup payload")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePickupQR decodes a scanned pickup payload.
func (s *qrcodeService) ParsePickupQR(qrData string) (uuid.UUID, string, error) {
	var data PickupPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, "", errors.Wrap(err, "failed to unmarshal pickup payload")
	}

	if data.Type != pickupType {
		return uuid.Nil, "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return uuid.Nil, "", errors.Wrap(err, "failed to parse order ID")
	}

	return orderID, data.Code, nil
}
