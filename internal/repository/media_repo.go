package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ParthDhengle/ClipHub/internal/models"
)

// Counter names the media counters that may be adjusted atomically.
type Counter string

const (
	CounterLikes     Counter = "likes"
	CounterViews     Counter = "views"
	CounterDownloads Counter = "downloads"
)

func (c Counter) Valid() bool {
	switch c {
	case CounterLikes, CounterViews, CounterDownloads:
		return true
	}
	return false
}

// CreatorStat is one leaderboard row.
type CreatorStat struct {
	CreatorID   string `bson:"_id" json:"creator_id"`
	Count       int64  `bson:"count" json:"count"`
	CreatorName string `bson:"creator_name" json:"creator_name"`
}

type MediaRepository interface {
	Create(ctx context.Context, m *models.Media) error
	Get(ctx context.Context, id string) (*models.Media, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Media, error)
	// IncrementCounter adjusts one counter by delta in a single remote $inc,
	// never a read-modify-write. delta must be +1 or -1.
	IncrementCounter(ctx context.Context, id string, counter Counter, delta int64) error
	TopCreators(ctx context.Context, limit int64) ([]CreatorStat, error)
}

type mongoMediaRepo struct {
	col *mongo.Collection
}

func NewMongoMediaRepo(db *mongo.Database) MediaRepository {
	col := db.Collection("media")
	_, _ = col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return &mongoMediaRepo{col: col}
}

func (r *mongoMediaRepo) Create(ctx context.Context, m *models.Media) error {
	if m.ID == "" {
		m.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.Status == "" {
		m.Status = models.MediaStatusPending
	}
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *mongoMediaRepo) Get(ctx context.Context, id string) (*models.Media, error) {
	var m models.Media
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMediaNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mongoMediaRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Media, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []models.Media{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoMediaRepo) IncrementCounter(ctx context.Context, id string, counter Counter, delta int64) error {
	if !counter.Valid() {
		return fmt.Errorf("unknown counter %q", counter)
	}
	if delta != 1 && delta != -1 {
		return fmt.Errorf("counter delta must be +1 or -1, got %d", delta)
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{string(counter): delta},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrMediaNotFound
	}
	return nil
}

func (r *mongoMediaRepo) TopCreators(ctx context.Context, limit int64) ([]CreatorStat, error) {
	if limit <= 0 {
		limit = 10
	}
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$user_id"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "creator"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "count", Value: 1},
			{Key: "creator_name", Value: bson.D{{Key: "$ifNull", Value: bson.A{
				bson.D{{Key: "$arrayElemAt", Value: bson.A{"$creator.name", 0}}},
				"Unknown",
			}}}},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	stats := []CreatorStat{}
	if err := cur.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
