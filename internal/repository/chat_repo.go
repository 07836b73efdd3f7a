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

// ChatRepo handles MongoDB operations for chat sessions and messages
type ChatRepo interface {
	CreateSession(ctx context.Context, session *model.ChatSession) (string, error)
	GetSession(ctx context.Context, id string) (*model.ChatSession, error)
	GetSessionsByUserID(ctx context.Context, userID string) ([]*model.ChatSession, error)
	TouchSession(ctx context.Context, id string) error
	DeleteSession(ctx context.Context, id string) error

	AppendMessage(ctx context.Context, msg *model.ChatMessage) (string, error)
	GetMessages(ctx context.Context, sessionID string, limit int) ([]*model.ChatMessage, error)
}

type chatRepo struct {
	sessions *mongo.Collection
	messages *mongo.Collection
}

// NewChatRepo creates a new chat repository
func NewChatRepo(db *mongo.Database) ChatRepo {
	return &chatRepo{
		sessions: db.Collection("chat_sessions"),
		messages: db.Collection("chat_messages"),
	}
}

func (r *chatRepo) CreateSession(ctx context.Context, session *model.ChatSession) (string, error) {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.CreatedAt = time.Now()
	session.UpdatedAt = time.Now()

	if _, err := r.sessions.InsertOne(ctx, session); err != nil {
		return "", err
	}
	return session.ID, nil
}

func (r *chatRepo) GetSession(ctx context.Context, id string) (*model.ChatSession, error) {
	var session model.ChatSession
	err := r.sessions.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *chatRepo) GetSessionsByUserID(ctx context.Context, userID string) ([]*model.ChatSession, error) {
	opts := options.Find().SetSort(bson.M{"updatedAt": -1})
	cursor, err := r.sessions.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.ChatSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *chatRepo) TouchSession(ctx context.Context, id string) error {
	_, err := r.sessions.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"updatedAt": time.Now()}})
	return err
}

// DeleteSession removes a session and all of its messages
func (r *chatRepo) DeleteSession(ctx context.Context, id string) error {
	if _, err := r.messages.DeleteMany(ctx, bson.M{"sessionId": id}); err != nil {
		return err
	}
	_, err := r.sessions.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *chatRepo) AppendMessage(ctx context.Context, msg *model.ChatMessage) (string, error) {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	msg.CreatedAt = time.Now()

	if _, err := r.messages.InsertOne(ctx, msg); err != nil {
		return "", err
	}
	return msg.ID, nil
}

// GetMessages returns messages in chronological order. With a positive limit
// only the most recent messages are returned, still oldest-first.
func (r *chatRepo) GetMessages(ctx context.Context, sessionID string, limit int) ([]*model.ChatMessage, error) {
	filter := bson.M{"sessionId": sessionID}

	if limit > 0 {
		opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(int64(limit))
		cursor, err := r.messages.Find(ctx, filter, opts)
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)

		var recent []*model.ChatMessage
		if err := cursor.All(ctx, &recent); err != nil {
			return nil, err
		}
		for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
			recent[i], recent[j] = recent[j], recent[i]
		}
		return recent, nil
	}

	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	cursor, err := r.messages.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var msgs []*model.ChatMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
