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

// TopicRepo handles MongoDB operations for topics
type TopicRepo interface {
	Create(ctx context.Context, topic *model.Topic) (string, error)
	GetByID(ctx context.Context, id string) (*model.Topic, error)
	GetByUserID(ctx context.Context, userID string) ([]*model.Topic, error)
	Update(ctx context.Context, topic *model.Topic) error
	Delete(ctx context.Context, id string) error
}

type topicRepo struct {
	collection *mongo.Collection
}

// NewTopicRepo creates a new topic repository
func NewTopicRepo(db *mongo.Database) TopicRepo {
	return &topicRepo{
		collection: db.Collection("topics"),
	}
}

func (r *topicRepo) Create(ctx context.Context, topic *model.Topic) (string, error) {
	if topic.ID == "" {
		topic.ID = uuid.New().String()
	}
	topic.CreatedAt = time.Now()
	topic.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, topic); err != nil {
		return "", err
	}
	return topic.ID, nil
}

func (r *topicRepo) GetByID(ctx context.Context, id string) (*model.Topic, error) {
	var topic model.Topic
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&topic)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Topic, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var topics []*model.Topic
	if err := cursor.All(ctx, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *topicRepo) Update(ctx context.Context, topic *model.Topic) error {
	topic.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": topic.ID}, topic)
	return err
}

func (r *topicRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
