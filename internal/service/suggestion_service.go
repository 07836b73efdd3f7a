package service

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"

	"soothe/internal/cache"
	"soothe/internal/model"
	"soothe/internal/repository"
)

// ErrQuotaExceeded means the user hit their daily generation limit
var ErrQuotaExceeded = errors.New("daily generation limit reached")

const defaultDailyLimit = 50

// Generator produces normalized suggestions for a topic. Implemented by
// GeneratorService; an interface so tests can substitute a fake upstream.
type Generator interface {
	GenerateSuggestions(ctx context.Context, req *GenerateRequest) (*GenerateResult, error)
}

// SuggestionService wraps generation with ownership checks, daily quotas,
// history-based de-duplication and persistence
type SuggestionService struct {
	topics     *TopicService
	repo       repository.SuggestionRepo
	history    cache.HistoryCache
	quota      cache.QuotaCache
	generator  Generator
	dailyLimit int64
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(topics *TopicService, repo repository.SuggestionRepo, history cache.HistoryCache, quota cache.QuotaCache, generator Generator) *SuggestionService {
	limit := int64(defaultDailyLimit)
	if v := os.Getenv("SUGGEST_DAILY_LIMIT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	return &SuggestionService{
		topics:     topics,
		repo:       repo,
		history:    history,
		quota:      quota,
		generator:  generator,
		dailyLimit: limit,
	}
}

// GenerateOptions carries the per-request knobs from the HTTP layer
type GenerateOptions struct {
	Context     string
	History     []model.PriorSuggestion
	Personality string
}

// Generate produces suggestions for a topic the user owns, stores them and
// refreshes the topic's history cache. Redis failures degrade to generating
// without quota/history rather than failing the request.
func (s *SuggestionService) Generate(ctx context.Context, userID, topicID string, opts GenerateOptions) (*GenerateResult, error) {
	topic, err := s.topics.Get(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}

	count, err := s.quota.Increment(ctx, userID)
	if err != nil {
		log.Printf("quota cache unavailable, skipping limit check: %v", err)
	} else if count > s.dailyLimit {
		return nil, ErrQuotaExceeded
	}

	history := opts.History
	if len(history) == 0 {
		cached, err := s.history.Get(ctx, topicID)
		if err != nil {
			log.Printf("history cache unavailable for topic %s: %v", topicID, err)
		} else {
			history = cached
		}
	}

	personality := topic.Personality
	if opts.Personality != "" {
		personality = model.ParsePersonality(opts.Personality)
	}

	extraContext := opts.Context
	if extraContext == "" {
		extraContext = topic.Description
	}

	result, err := s.generator.GenerateSuggestions(ctx, &GenerateRequest{
		Topic:       topic.Title,
		Context:     extraContext,
		History:     history,
		Personality: personality,
	})
	if err != nil {
		return nil, err
	}

	rows := make([]*model.Suggestion, len(result.Suggestions))
	for i, sug := range result.Suggestions {
		rows[i] = &model.Suggestion{
			TopicID:     topicID,
			UserID:      userID,
			Text:        sug.Text,
			Type:        sug.Type,
			Personality: result.Personality,
		}
	}
	if err := s.repo.InsertBatch(ctx, rows); err != nil {
		// The user already paid for the generation; hand the result back
		// and leave the gap in storage to the logs.
		log.Printf("storing suggestions for topic %s failed: %v", topicID, err)
		return result, nil
	}

	if err := s.history.Append(ctx, topicID, result.Suggestions); err != nil {
		log.Printf("updating history cache for topic %s failed: %v", topicID, err)
	}

	return result, nil
}

// ListStored returns the persisted suggestions of a topic the user owns
func (s *SuggestionService) ListStored(ctx context.Context, userID, topicID string, limit int) ([]*model.Suggestion, error) {
	if _, err := s.topics.Get(ctx, userID, topicID); err != nil {
		return nil, err
	}
	return s.repo.GetByTopicID(ctx, topicID, limit)
}
