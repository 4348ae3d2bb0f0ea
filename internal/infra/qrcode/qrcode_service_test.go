package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Zero size falls back", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "http://localhost:8001")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateGroceryListQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "http://localhost:8001")

	qrBytes, err := service.GenerateGroceryListQR(uuid.New())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GroceryListURL(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://nutriplan.example.com/").(*qrcodeService)
	planID := uuid.New()

	assert.Equal(t, "https://nutriplan.example.com/api/v1/grocery-lists/"+planID.String(), svc.groceryListURL(planID))
}
