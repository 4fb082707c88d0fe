package service

import "github.com/google/uuid"

// QRCodeService generates and parses order-receipt QR codes. The code embeds
// the order ID so a delivery agent can pull up the order from a scan.
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code for the given order.
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)

	// ParseOrderQR decodes QR payload text back into an order ID.
	ParseOrderQR(qrData string) (uuid.UUID, error)
}
