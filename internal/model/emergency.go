package model

// AmbulanceRequest books an ambulance pickup.
type AmbulanceRequest struct {
	PickupAddress string `json:"pickupAddress" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	AmbulanceType string `json:"ambulanceType" binding:"required"`
	ContactNumber string `json:"contactNumber" binding:"required"`
	Notes         string `json:"notes"`
}

// DiagnosticVanRequest books an at-home diagnostic van visit.
type DiagnosticVanRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	Address       string `json:"address" binding:"required"`
	ContactNumber string `json:"contactNumber" binding:"required"`
	Date          string `json:"date" binding:"required"`
	TestType      string `json:"testType" binding:"required"`
}

// EmergencyBooking echoes a booking back to the client with a generated
// reference. Bookings are dispatched, not persisted.
type EmergencyBooking struct {
	Reference   string      `json:"id"`
	Service     string      `json:"service"`
	Status      string      `json:"status"`
	RequestedAt string      `json:"requestedAt"`
	Details     interface{} `json:"details"`
}
