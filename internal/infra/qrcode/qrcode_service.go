// Package qrcode generates navigation hand-off QR codes.
package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"wayfinder/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type shareService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewShareService creates a share service encoding deep links under baseURL.
func NewShareService(size int, errorCorrectionLevel, baseURL string) service.ShareService {
	// Set error correction level
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

	return &shareService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateNavigateQR generates a PNG QR code for a navigation deep link.
func (s *shareService) GenerateNavigateQR(buildingID, floor, room string) ([]byte, error) {
	link, err := s.NavigateLink(buildingID, floor, room)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// NavigateLink builds the deep link a scanned code resolves to.
func (s *shareService) NavigateLink(buildingID, floor, room string) (string, error) {
	if buildingID == "" {
		return "", fmt.Errorf("building id is required for a share link")
	}

	query := url.Values{}
	query.Set("building", buildingID)
	if floor != "" {
		query.Set("floor", floor)
	}
	if room != "" {
		query.Set("room", room)
	}

	return s.baseURL + "/navigate?" + query.Encode(), nil
}
