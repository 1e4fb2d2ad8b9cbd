// Package qrcode renders QR codes that link to public truck profiles.
package qrcode

import (
	"fmt"
	"strings"

	"trucktrace/config"
	"trucktrace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:3000"
)

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
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewFromConfig builds the service from the qrcode config section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(0, "", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// TruckProfileURL returns the public profile URL of a truck.
func (s *qrcodeService) TruckProfileURL(truckID uuid.UUID) string {
	return fmt.Sprintf("%s/trucks/%s", s.baseURL, truckID)
}

// GenerateTruckQR renders the truck's profile URL as a PNG.
func (s *qrcodeService) GenerateTruckQR(truckID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.TruckProfileURL(truckID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// Module provides the QR code FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFromConfig),
)
