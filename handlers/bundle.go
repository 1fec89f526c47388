package handlers

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	Availability *AvailabilityHandler
	Appointments *AppointmentHandler
	Catalog      *CatalogHandler
	Users        *UserHandler
	Email        *EmailHandler
	Health       *HealthHandler
}
