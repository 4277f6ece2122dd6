package models

// Service is a catalog entry (e.g., Plomberie, Électricité).
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice   float64 `bson:"base_price" json:"base_price"`
}

// ServiceMatch is the slim row attached to an AI analysis when the predicted
// category resolves to a catalog entry.
type ServiceMatch struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	BasePrice float64 `bson:"base_price" json:"base_price"`
}
