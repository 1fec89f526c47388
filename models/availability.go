package models

// AvailabilityResponse is the body of GET /get-available-slots.
type AvailabilityResponse struct {
	Error    bool     `json:"error"`
	Date     string   `json:"date"`
	Duration int      `json:"duration"`
	Slots    []string `json:"slots"`
	Message  string   `json:"message"`
}
