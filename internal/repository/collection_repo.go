package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ParthDhengle/ClipHub/internal/models"
)

type CollectionRepository interface {
	Create(ctx context.Context, c *models.Collection) error
	Get(ctx context.Context, id string) (*models.Collection, error)
}

type mongoCollectionRepo struct {
	col *mongo.Collection
}

func NewMongoCollectionRepo(db *mongo.Database) CollectionRepository {
	return &mongoCollectionRepo{col: db.Collection("collections")}
}

func (r *mongoCollectionRepo) Create(ctx context.Context, c *models.Collection) error {
	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	c.CreatedAt = time.Now().UTC()
	if c.MediaIDs == nil {
		c.MediaIDs = []string{}
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *mongoCollectionRepo) Get(ctx context.Context, id string) (*models.Collection, error) {
	var c models.Collection
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCollectionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
