package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ParthDhengle/ClipHub/internal/models"
)

// AnalyticsRepository is append-only; records are never updated or deleted.
type AnalyticsRepository interface {
	Create(ctx context.Context, a *models.Analytics) error
}

type mongoAnalyticsRepo struct {
	col *mongo.Collection
}

func NewMongoAnalyticsRepo(db *mongo.Database) AnalyticsRepository {
	return &mongoAnalyticsRepo{col: db.Collection("analytics")}
}

func (r *mongoAnalyticsRepo) Create(ctx context.Context, a *models.Analytics) error {
	if a.ID == "" {
		a.ID = primitive.NewObjectID().Hex()
	}
	a.CreatedAt = time.Now().UTC()
	_, err := r.col.InsertOne(ctx, a)
	return err
}
