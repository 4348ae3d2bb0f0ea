package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders QR codes that open a plan's grocery list.
type QRCodeService interface {
	// GenerateGroceryListQR returns a PNG QR code for the plan's grocery list URL.
	GenerateGroceryListQR(planID uuid.UUID) ([]byte, error)
}
