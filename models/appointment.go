package models

import "time"

// Appointment is a booked visit. Date is "2006-01-02" and Time is "15:04",
// both wall-clock values in the business timezone. Services is ordered.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	Date            string    `bson:"date" json:"date"`
	Time            string    `bson:"time" json:"time"`
	Client          string    `bson:"client" json:"client"`
	Services        []string  `bson:"services" json:"services"`
	Note            string    `bson:"note" json:"note"`
	Product         string    `bson:"product,omitempty" json:"product,omitempty"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// AppointmentRequest is the payload of create and edit requests. On edit every
// field is optional; a nil Product leaves it unchanged and an empty string
// removes it.
type AppointmentRequest struct {
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Services []string `json:"services"`
	Note     *string  `json:"note"`
	Product  *string  `json:"product"`
}
