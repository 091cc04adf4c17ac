package models

import "time"

// User is the directory record for a provider identity. The _id is the
// identity provider's UID and never changes after creation.
type User struct {
	ID             string    `bson:"_id" json:"user_id"`
	Email          string    `bson:"email" json:"email"`
	Name           string    `bson:"name,omitempty" json:"name,omitempty"`
	AvatarURL      string    `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Bio            string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Location       string    `bson:"location,omitempty" json:"location,omitempty"`
	Specialty      string    `bson:"specialty,omitempty" json:"specialty,omitempty"`
	IsVerified     bool      `bson:"is_verified" json:"is_verified"`
	IsAdmin        bool      `bson:"is_admin" json:"is_admin"`
	Preferences    []string  `bson:"preferences,omitempty" json:"preferences,omitempty"`
	SubscriptionID string    `bson:"subscription_id,omitempty" json:"subscription_id,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// UserUpdate carries the mutable profile fields. Nil pointers are left
// untouched by the repository.
type UserUpdate struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
	Specialty *string `json:"specialty"`
}
