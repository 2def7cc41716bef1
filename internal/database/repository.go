package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// UsageStore persists usage documents
type UsageStore interface {
	InsertUsage(ctx context.Context, usage *PromptUsage) error
}

// UsageRepository writes PromptUsage documents to MongoDB
type UsageRepository struct {
	collection *mongo.Collection
}

// NewUsageRepository returns a repository over the prompt-usages collection
func NewUsageRepository(conn *Connection) *UsageRepository {
	return &UsageRepository{
		collection: conn.GetCollection(UsageCollection),
	}
}

// InsertUsage inserts a new usage document
func (r *UsageRepository) InsertUsage(ctx context.Context, usage *PromptUsage) error {
	if _, err := r.collection.InsertOne(ctx, usage); err != nil {
		return fmt.Errorf("failed to insert prompt usage: %w", err)
	}
	return nil
}
