package models

import "time"

type MediaType string

const (
	MediaTypePhoto      MediaType = "photo"
	MediaTypeVideo      MediaType = "video"
	MediaTypeMusic      MediaType = "music"
	MediaTypeCollection MediaType = "collection"
)

func (t MediaType) Valid() bool {
	switch t {
	case MediaTypePhoto, MediaTypeVideo, MediaTypeMusic, MediaTypeCollection:
		return true
	}
	return false
}

type MediaStatus string

const (
	MediaStatusPending  MediaStatus = "pending"
	MediaStatusApproved MediaStatus = "approved"
	MediaStatusRejected MediaStatus = "rejected"
)

// Media is a published item. The likes/views/downloads counters are only
// ever touched through the repository's atomic increment.
type Media struct {
	ID           string      `bson:"_id" json:"media_id"`
	OwnerID      string      `bson:"user_id" json:"user_id"`
	Title        string      `bson:"title" json:"title"`
	URL          string      `bson:"url" json:"url"`
	ThumbnailURL string      `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	Type         MediaType   `bson:"type" json:"type"`
	CategoryID   string      `bson:"category_id,omitempty" json:"category_id,omitempty"`
	IsPremium    bool        `bson:"is_premium" json:"is_premium"`
	Tags         []string    `bson:"tags,omitempty" json:"tags,omitempty"`
	Likes        int64       `bson:"likes" json:"likes"`
	Views        int64       `bson:"views" json:"views"`
	Downloads    int64       `bson:"downloads" json:"downloads"`
	Status       MediaStatus `bson:"status" json:"status"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `bson:"updated_at" json:"updated_at"`
}

// MediaDraft is the caller-supplied part of a media record.
type MediaDraft struct {
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Type         MediaType `json:"type"`
	CategoryID   string    `json:"category_id"`
	IsPremium    bool      `json:"is_premium"`
	Tags         []string  `json:"tags"`
}
