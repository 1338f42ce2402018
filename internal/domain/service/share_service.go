package service

// ShareService encodes navigation deep links as scannable codes so a kiosk
// selection can be handed off to a visitor's phone.
type ShareService interface {
	// GenerateNavigateQR returns a PNG QR code encoding a deep link to the
	// given building/floor/room. Room may be empty.
	GenerateNavigateQR(buildingID, floor, room string) ([]byte, error)
}
