package models

// Product is a retail item that may be attached to an appointment.
type Product struct {
	ID          string  `bson:"id" json:"id"`
	ProductName string  `bson:"productName" json:"productName"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
}

// ProductUpdate carries the optional fields of PUT /edit-product/:id.
type ProductUpdate struct {
	ProductName *string  `json:"productName"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// Empty reports whether the update carries no changes.
func (u ProductUpdate) Empty() bool {
	return u.ProductName == nil && u.Description == nil && u.Price == nil
}
