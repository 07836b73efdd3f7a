package service

import (
	"context"
	"errors"
	"strings"

	"soothe/internal/config"
	"soothe/internal/model"
	"soothe/internal/prompt"
	"soothe/internal/repository"
)

var ErrSessionNotFound = errors.New("chat session not found")

// chatHistoryWindow bounds how many stored turns are replayed to the model
const chatHistoryWindow = 30

const chatMaxTokens = 400

// ChatService runs personality-preset conversations over stored history.
// Each reply is one upstream call composed from the session's personality
// prompt plus its recent messages.
type ChatService struct {
	repo   repository.ChatRepo
	config *config.AIConfig
	client *openAIClient
}

// NewChatService creates a new chat service
func NewChatService(repo repository.ChatRepo, cfg *config.AIConfig) *ChatService {
	return &ChatService{
		repo:   repo,
		config: cfg,
		client: newOpenAIClient(cfg),
	}
}

// StartSession creates a new chat session bound to one personality
func (s *ChatService) StartSession(ctx context.Context, userID, personality, title string) (*model.ChatSession, error) {
	if strings.TrimSpace(title) == "" {
		title = "New chat"
	}

	session := &model.ChatSession{
		UserID:      userID,
		Personality: model.ParsePersonality(personality),
		Title:       strings.TrimSpace(title),
	}

	id, err := s.repo.CreateSession(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = id
	return session, nil
}

// GetSession returns a session if it exists and belongs to the user
func (s *ChatService) GetSession(ctx context.Context, userID, sessionID string) (*model.ChatSession, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.UserID != userID {
		return nil, ErrNotOwner
	}
	return session, nil
}

// ListSessions returns the user's sessions, most recently active first
func (s *ChatService) ListSessions(ctx context.Context, userID string) ([]*model.ChatSession, error) {
	return s.repo.GetSessionsByUserID(ctx, userID)
}

// DeleteSession removes a session and its messages
func (s *ChatService) DeleteSession(ctx context.Context, userID, sessionID string) error {
	if _, err := s.GetSession(ctx, userID, sessionID); err != nil {
		return err
	}
	return s.repo.DeleteSession(ctx, sessionID)
}

// ListMessages returns a session's messages in chronological order
func (s *ChatService) ListMessages(ctx context.Context, userID, sessionID string) ([]*model.ChatMessage, error) {
	if _, err := s.GetSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return s.repo.GetMessages(ctx, sessionID, 0)
}

// SendMessage stores the user's turn, asks the model for the personality's
// reply over the recent history, stores that reply and returns it. Upstream
// failures surface with the shared error taxonomy; the user's turn stays
// stored so the conversation can be retried.
func (s *ChatService) SendMessage(ctx context.Context, userID, sessionID, content string) (*model.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("message content is required")
	}

	session, err := s.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	history, err := s.repo.GetMessages(ctx, sessionID, chatHistoryWindow)
	if err != nil {
		return nil, err
	}

	userMsg := &model.ChatMessage{
		SessionID: sessionID,
		Role:      model.RoleUser,
		Content:   content,
	}
	if _, err := s.repo.AppendMessage(ctx, userMsg); err != nil {
		return nil, err
	}

	messages := make([]chatMessage, 0, len(history)+2)
	messages = append(messages, chatMessage{Role: "system", Content: prompt.ChatTemplate(session.Personality)})
	for _, m := range history {
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: content})

	completion, err := s.client.complete(ctx, completionRequest{
		Model:       s.config.Models.Chat,
		Messages:    messages,
		Temperature: s.config.ChatTemperature,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	reply := &model.ChatMessage{
		SessionID: sessionID,
		Role:      model.RoleAssistant,
		Content:   completion.Choices[0].Message.Content,
	}
	if _, err := s.repo.AppendMessage(ctx, reply); err != nil {
		return nil, err
	}

	if err := s.repo.TouchSession(ctx, sessionID); err != nil {
		return nil, err
	}

	return reply, nil
}
