package entity

// Reservation is the only record written by this service. It is validated at
// the HTTP boundary via the binding tags and never read back. Date and time
// are carried as plain strings (YYYY-MM-DD / HH:MM); only presence is
// enforced.
type Reservation struct {
	Name      string  `json:"name" bson:"name" binding:"required"`
	Email     string  `json:"email" bson:"email" binding:"required"`
	Phone     string  `json:"phone" bson:"phone" binding:"required"`
	Date      string  `json:"date" bson:"date" binding:"required"`
	Time      string  `json:"time" bson:"time" binding:"required"`
	PartySize int     `json:"party_size" bson:"party_size" binding:"required,gte=1,lte=20"`
	Notes     *string `json:"notes,omitempty" bson:"notes,omitempty"`
}
