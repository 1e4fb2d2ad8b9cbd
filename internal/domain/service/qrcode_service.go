package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders the code printed on a truck's window. The code encodes
// TruckProfileURL, which is built from the configured public base URL.
type QRCodeService interface {
	GenerateTruckQR(truckID uuid.UUID) ([]byte, error) // PNG bytes
	TruckProfileURL(truckID uuid.UUID) string
}
