package models

import "time"

// Analytics is an append-only event batch recorded by a creator.
type Analytics struct {
	ID             string    `bson:"_id" json:"analytics_id"`
	OwnerID        string    `bson:"user_id" json:"user_id"`
	MediaID        string    `bson:"media_id,omitempty" json:"media_id,omitempty"`
	Views          int64     `bson:"views" json:"views"`
	Downloads      int64     `bson:"downloads" json:"downloads"`
	Likes          int64     `bson:"likes" json:"likes"`
	EngagementRate float64   `bson:"engagement_rate,omitempty" json:"engagement_rate,omitempty"`
	ApprovalRate   float64   `bson:"approval_rate,omitempty" json:"approval_rate,omitempty"`
	QualityScore   float64   `bson:"quality_score,omitempty" json:"quality_score,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

type AnalyticsDraft struct {
	MediaID        string  `json:"media_id"`
	Views          int64   `json:"views"`
	Downloads      int64   `json:"downloads"`
	Likes          int64   `json:"likes"`
	EngagementRate float64 `json:"engagement_rate"`
	ApprovalRate   float64 `json:"approval_rate"`
	QualityScore   float64 `json:"quality_score"`
}
