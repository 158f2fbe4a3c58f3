package testmodels

import "github.com/go-openapi/strfmt"

type Player struct {

	// Timestamp when the player record was created.
	// Required: true
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt"`

	// Unique identifier for the player.
	// Required: true
	ID *string `json:"Id"`

	// Display name of the player.
	// Required: true
	Name *string `json:"Name"`

	// Current rating of the player.
	Rating int `json:"Rating,omitempty"`

	// Membership status, e.g. "active".
	Status string `json:"Status,omitempty"`

	// Timestamp when the player record was last updated.
	// Required: true
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt"`
}
