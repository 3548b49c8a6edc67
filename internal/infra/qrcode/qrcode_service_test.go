package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pymerp/config"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
		want                 string
	}{
		{"Low error correction", "L", "L"},
		{"Lowercase level", "q", "Q"},
		{"Highest error correction", "H", "H"},
		{"Default error correction", "invalid", "M"},
	}

	levels := map[string]int{"L": 0, "M": 1, "Q": 2, "H": 3}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(256, tt.errorCorrectionLevel).(*qrcodeService)
			assert.Equal(t, levels[tt.want], int(svc.errorCorrectionLevel))
		})
	}
}

func TestQRCodeService_GeneratePNG(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"Small QR", 128, 128},
		{"Large QR", 512, 512},
		{"Default size", 0, defaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, "M")

			out, err := svc.GeneratePNG("https://pymerp.cl/cafe-nunoa")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, tt.want, img.Bounds().Dx())
			assert.Equal(t, tt.want, img.Bounds().Dy())
		})
	}
}

func TestQRCodeService_GeneratePNG_EmptyContent(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GeneratePNG("")
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	svc := newFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 300, ErrorCorrectionLevel: "H"}}).(*qrcodeService)
	assert.Equal(t, 300, svc.size)

	svc = newFromConfig(&config.Config{}).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)
}
