package models

// Service is a bookable salon service. Duration is in minutes.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	ServiceName string  `bson:"serviceName" json:"serviceName"`
	Description string  `bson:"description" json:"description"`
	Duration    int     `bson:"duration" json:"duration"`
	Price       float64 `bson:"price" json:"price"`
}

// ServiceUpdate carries the optional fields of PUT /edit-service/:id.
type ServiceUpdate struct {
	ServiceName *string  `json:"serviceName"`
	Description *string  `json:"description"`
	Duration    *int     `json:"duration"`
	Price       *float64 `json:"price"`
}

// Empty reports whether the update carries no changes.
func (u ServiceUpdate) Empty() bool {
	return u.ServiceName == nil && u.Description == nil && u.Duration == nil && u.Price == nil
}
