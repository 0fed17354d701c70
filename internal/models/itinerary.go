package models

import "time"

// Itinerary is a planned trip record. The district field is free text, not
// a catalog foreign key.
type Itinerary struct {
	ID              string    `json:"id"                        bson:"_id"`
	District        string    `json:"district"                  bson:"district"`
	Date            string    `json:"date"                      bson:"date"` // ISO date string
	Description     string    `json:"description"               bson:"description"`
	Spots           []string  `json:"spots"                     bson:"spots"`
	Participants    int       `json:"participants"              bson:"participants"`
	MaxParticipants *int      `json:"maxParticipants,omitempty" bson:"maxParticipants,omitempty"`
	ContactInfo     string    `json:"contactInfo,omitempty"     bson:"contactInfo,omitempty"`
	CreatedAt       time.Time `json:"createdAt"                 bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"                 bson:"updatedAt"`
}
