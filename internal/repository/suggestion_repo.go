package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"soothe/internal/model"
)

// SuggestionRepo handles MongoDB operations for stored suggestions
type SuggestionRepo interface {
	InsertBatch(ctx context.Context, suggestions []*model.Suggestion) error
	GetByTopicID(ctx context.Context, topicID string, limit int) ([]*model.Suggestion, error)
	DeleteByTopicID(ctx context.Context, topicID string) error
}

type suggestionRepo struct {
	collection *mongo.Collection
}

// NewSuggestionRepo creates a new suggestion repository
func NewSuggestionRepo(db *mongo.Database) SuggestionRepo {
	return &suggestionRepo{
		collection: db.Collection("suggestions"),
	}
}

func (r *suggestionRepo) InsertBatch(ctx context.Context, suggestions []*model.Suggestion) error {
	if len(suggestions) == 0 {
		return nil
	}

	docs := make([]interface{}, len(suggestions))
	now := time.Now()
	for i, s := range suggestions {
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		s.CreatedAt = now
		docs[i] = s
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *suggestionRepo) GetByTopicID(ctx context.Context, topicID string, limit int) ([]*model.Suggestion, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"topicId": topicID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var suggestions []*model.Suggestion
	if err := cursor.All(ctx, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *suggestionRepo) DeleteByTopicID(ctx context.Context, topicID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"topicId": topicID})
	return err
}
