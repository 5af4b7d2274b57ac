package models

import (
	"time"
)

// User is the server-owned record of a BuddyUp member
type User struct {
	// ID is the unique identifier for the user
	ID string `json:"userID"`

	// Username is the public display name
	Username string `json:"username"`

	// Email is the contact address, possibly empty
	Email string `json:"email"`

	// FirstName is the given name reported by the identity provider
	FirstName string `json:"first_name,omitempty"`

	// LastName is the family name reported by the identity provider
	LastName string `json:"last_name,omitempty"`

	// Bio is the free-form profile text
	Bio string `json:"bio"`

	// Location is where the user lives
	Location string `json:"location"`

	// ProfileImage is the URL of the avatar
	ProfileImage string `json:"profile_image"`

	// Interests contains the categories the user follows
	Interests []string `json:"interests"`

	// FacebookID links the user to a Facebook account
	FacebookID string `json:"facebook_id,omitempty"`

	// GoogleID links the user to a Google account
	GoogleID string `json:"google_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
