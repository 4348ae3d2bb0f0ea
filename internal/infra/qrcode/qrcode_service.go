package qrcode

import (
	"strings"

	"nutriplan/internal/domain/service"
	"nutriplan/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// GroceryListPath is the route prefix a grocery list QR code points at.
const GroceryListPath = "/api/v1/grocery-lists/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateGroceryListQR encodes the grocery list URL of the plan as a PNG
func (s *qrcodeService) GenerateGroceryListQR(planID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.groceryListURL(planID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) groceryListURL(planID uuid.UUID) string {
	return s.baseURL + GroceryListPath + planID.String()
}
