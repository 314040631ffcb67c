package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for pickup QR code generation and parsing
type QRCodeService interface {
	// GeneratePickupQR renders a PNG the seller scans at pickup
	GeneratePickupQR(orderID uuid.UUID, confirmationCode string) ([]byte, error)

	// ParsePickupQR returns the order ID and confirmation code encoded in a pickup QR payload
	ParsePickupQR(qrData string) (uuid.UUID, string, error)
}
