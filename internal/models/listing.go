// internal/models/listing.go
package models

import "time"

// Location is a WGS 84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// Listing is a room/sublet advertisement as supplied by the data-access
// layer. The search core treats it as read-only.
type Listing struct {
	ID               string     `json:"id" db:"id"`
	Title            string     `json:"title" db:"title"`
	Description      string     `json:"description" db:"description"`
	City             string     `json:"city" db:"city"`
	State            string     `json:"state" db:"state"`
	Price            float64    `json:"price" db:"price"`
	RoomType         string     `json:"roomType" db:"room_type"`
	Amenities        []string   `json:"amenities" db:"amenities"`
	HouseRules       []string   `json:"houseRules" db:"house_rules"`
	Languages        []string   `json:"languages" db:"languages"`
	LeaseDuration    string     `json:"leaseDuration" db:"lease_duration"`
	MoveInDate       *time.Time `json:"moveInDate,omitempty" db:"move_in_date"`
	GenderPreference string     `json:"genderPreference,omitempty" db:"gender_preference"`
	HouseholdGender  string     `json:"householdGender,omitempty" db:"household_gender"`
	Location         Location   `json:"location"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
	AvgRating        *float64   `json:"avgRating,omitempty" db:"avg_rating"`
}
