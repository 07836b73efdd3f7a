package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"soothe/internal/model"
)

// historyTTL bounds how long recent suggestions bias generation away from
// repeats; after a day a repeat is acceptable.
const historyTTL = 24 * time.Hour

// maxHistoryEntries caps the prompt space spent on de-duplication
const maxHistoryEntries = 15

// HistoryCache keeps the most recent suggestions per topic so repeated
// generation requests can steer the model away from what was just shown,
// even when the client does not echo history back.
type HistoryCache interface {
	Append(ctx context.Context, topicID string, suggestions []model.GeneratedSuggestion) error
	Get(ctx context.Context, topicID string) ([]model.PriorSuggestion, error)
	Clear(ctx context.Context, topicID string) error
}

type historyCache struct {
	client *redis.Client
}

// NewHistoryCache creates a new history cache
func NewHistoryCache(client *redis.Client) HistoryCache {
	return &historyCache{
		client: client,
	}
}

func (c *historyCache) key(topicID string) string {
	return "topic:" + topicID + ":history"
}

func (c *historyCache) Append(ctx context.Context, topicID string, suggestions []model.GeneratedSuggestion) error {
	if len(suggestions) == 0 {
		return nil
	}

	key := c.key(topicID)
	values := make([]interface{}, 0, len(suggestions))
	for _, s := range suggestions {
		data, err := json.Marshal(model.PriorSuggestion{Text: s.Text, Type: s.Type})
		if err != nil {
			return err
		}
		values = append(values, data)
	}

	pipe := c.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, int64(-maxHistoryEntries), -1)
	pipe.Expire(ctx, key, historyTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *historyCache) Get(ctx context.Context, topicID string) ([]model.PriorSuggestion, error) {
	items, err := c.client.LRange(ctx, c.key(topicID), 0, -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	history := make([]model.PriorSuggestion, 0, len(items))
	for _, item := range items {
		var prior model.PriorSuggestion
		if err := json.Unmarshal([]byte(item), &prior); err != nil {
			continue // skip corrupt entries rather than failing the request
		}
		history = append(history, prior)
	}
	return history, nil
}

func (c *historyCache) Clear(ctx context.Context, topicID string) error {
	return c.client.Del(ctx, c.key(topicID)).Err()
}
