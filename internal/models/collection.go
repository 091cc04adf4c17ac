package models

import "time"

// Collection groups media ids under a title. ItemCount is caller-supplied
// and deliberately not derived from len(MediaIDs).
type Collection struct {
	ID        string    `bson:"_id" json:"collection_id"`
	OwnerID   string    `bson:"user_id" json:"user_id"`
	Title     string    `bson:"title" json:"title"`
	ItemCount int       `bson:"item_count" json:"item_count"`
	MediaIDs  []string  `bson:"media_ids" json:"media_ids"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type CollectionDraft struct {
	Title     string   `json:"title"`
	ItemCount int      `json:"item_count"`
	MediaIDs  []string `json:"media_ids"`
}
