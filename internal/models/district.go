package models

import "time"

// CatalogDistrict is a compiled-in catalog entry. The catalog is immutable;
// coverage state is overlaid from the remote store at load time.
type CatalogDistrict struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Province    string     `json:"province"`
	Coordinates [2]float64 `json:"coordinates"` // [longitude, latitude]
}

// District is a catalog entry annotated with its coverage overlay.
type District struct {
	ID          string     `json:"id"          bson:"_id"`
	Name        string     `json:"name"        bson:"name"`
	Province    string     `json:"province"    bson:"province"`
	Coordinates [2]float64 `json:"coordinates" bson:"coordinates"`
	Covered     bool       `json:"covered"     bson:"covered"`
	DateVisited string     `json:"dateVisited,omitempty" bson:"dateVisited,omitempty"`
	Highlights  []string   `json:"highlights,omitempty"  bson:"highlights,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt,omitempty"   bson:"updatedAt,omitempty"`
}

// Province groups catalog districts for the sidebar and stats views.
type Province struct {
	Name      string            `json:"name"`
	Districts []CatalogDistrict `json:"districts"`
}
