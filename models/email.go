package models

// EmailPayload is queued for asynchronous delivery.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ContactRequest is the payload of POST /contact.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// SubscribeRequest is the payload of POST /subscribe.
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}
