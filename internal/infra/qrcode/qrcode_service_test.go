package qrcode

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShareService(t *testing.T) {
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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewShareService(tt.size, tt.errorCorrectionLevel, "https://maps.example.edu")
			assert.NotNil(t, service)
		})
	}
}

func TestShareService_GenerateNavigateQR(t *testing.T) {
	service := NewShareService(256, "M", "https://maps.example.edu")

	qrBytes, err := service.GenerateNavigateQR("H", "8", "H-801")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestShareService_GenerateNavigateQR_RequiresBuilding(t *testing.T) {
	service := NewShareService(256, "M", "https://maps.example.edu")

	_, err := service.GenerateNavigateQR("", "8", "H-801")
	assert.Error(t, err)
}

func TestShareService_NavigateLink(t *testing.T) {
	service := NewShareService(256, "M", "https://maps.example.edu/").(*shareService)

	link, err := service.NavigateLink("H", "8", "H-801")
	require.NoError(t, err)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/navigate", parsed.Path)
	assert.Equal(t, "H", parsed.Query().Get("building"))
	assert.Equal(t, "8", parsed.Query().Get("floor"))
	assert.Equal(t, "H-801", parsed.Query().Get("room"))

	// Room-less links omit the parameter.
	link, err = service.NavigateLink("H", "8", "")
	require.NoError(t, err)
	parsed, err = url.Parse(link)
	require.NoError(t, err)
	assert.False(t, parsed.Query().Has("room"))
}
