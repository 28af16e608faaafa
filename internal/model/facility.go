package model

import "time"

// Facility categories accepted by the API. CategoryRide is the default
// when a create request omits the field.
const (
	CategoryRide   = "ride"
	CategoryWater  = "water"
	CategoryFamily = "family"
	CategoryShow   = "show"
	CategoryDining = "dining"
	CategoryOther  = "other"
)

// ValidCategory reports whether s is one of the known facility categories.
func ValidCategory(s string) bool {
	switch s {
	case CategoryRide, CategoryWater, CategoryFamily, CategoryShow, CategoryDining, CategoryOther:
		return true
	}
	return false
}

// Facility represents a themed attraction tickets are sold against.
// Mirrors the `facilities` table.
type Facility struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
