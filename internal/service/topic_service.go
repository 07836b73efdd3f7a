package service

import (
	"context"
	"errors"

	"soothe/internal/model"
	"soothe/internal/repository"
)

var (
	ErrTopicNotFound = errors.New("topic not found")
	ErrNotOwner      = errors.New("resource belongs to another user")
)

// TopicService handles topic CRUD and the suggestion cascade on delete
type TopicService struct {
	topics      repository.TopicRepo
	suggestions repository.SuggestionRepo
}

// NewTopicService creates a new topic service
func NewTopicService(topics repository.TopicRepo, suggestions repository.SuggestionRepo) *TopicService {
	return &TopicService{
		topics:      topics,
		suggestions: suggestions,
	}
}

// Create stores a new topic for the user
func (s *TopicService) Create(ctx context.Context, topic *model.Topic) (string, error) {
	topic.Personality = model.ParsePersonality(string(topic.Personality))
	return s.topics.Create(ctx, topic)
}

// Get returns a topic if it exists and belongs to the user
func (s *TopicService) Get(ctx context.Context, userID, topicID string) (*model.Topic, error) {
	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	if topic.UserID != userID {
		return nil, ErrNotOwner
	}
	return topic, nil
}

// List returns all topics of the user, newest first
func (s *TopicService) List(ctx context.Context, userID string) ([]*model.Topic, error) {
	return s.topics.GetByUserID(ctx, userID)
}

// Update replaces the mutable fields of a topic
func (s *TopicService) Update(ctx context.Context, userID string, topic *model.Topic) error {
	existing, err := s.Get(ctx, userID, topic.ID)
	if err != nil {
		return err
	}

	existing.Title = topic.Title
	existing.Description = topic.Description
	existing.Personality = model.ParsePersonality(string(topic.Personality))
	return s.topics.Update(ctx, existing)
}

// Delete removes a topic and all suggestions stored for it
func (s *TopicService) Delete(ctx context.Context, userID, topicID string) error {
	if _, err := s.Get(ctx, userID, topicID); err != nil {
		return err
	}

	if err := s.suggestions.DeleteByTopicID(ctx, topicID); err != nil {
		return err
	}
	return s.topics.Delete(ctx, topicID)
}
