package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"soothe/internal/model"
)

type fakeChatRepo struct {
	sessions map[string]*model.ChatSession
	messages []*model.ChatMessage
	next     int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{sessions: map[string]*model.ChatSession{}}
}

func (r *fakeChatRepo) CreateSession(_ context.Context, s *model.ChatSession) (string, error) {
	r.next++
	s.ID = fmt.Sprintf("session-%d", r.next)
	r.sessions[s.ID] = s
	return s.ID, nil
}

func (r *fakeChatRepo) GetSession(_ context.Context, id string) (*model.ChatSession, error) {
	return r.sessions[id], nil
}

func (r *fakeChatRepo) GetSessionsByUserID(_ context.Context, userID string) ([]*model.ChatSession, error) {
	var out []*model.ChatSession
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) TouchSession(_ context.Context, _ string) error { return nil }

func (r *fakeChatRepo) DeleteSession(_ context.Context, id string) error {
	delete(r.sessions, id)
	var kept []*model.ChatMessage
	for _, m := range r.messages {
		if m.SessionID != id {
			kept = append(kept, m)
		}
	}
	r.messages = kept
	return nil
}

func (r *fakeChatRepo) AppendMessage(_ context.Context, m *model.ChatMessage) (string, error) {
	r.next++
	m.ID = fmt.Sprintf("msg-%d", r.next)
	r.messages = append(r.messages, m)
	return m.ID, nil
}

func (r *fakeChatRepo) GetMessages(_ context.Context, sessionID string, _ int) ([]*model.ChatMessage, error) {
	var out []*model.ChatMessage
	for _, m := range r.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestChatService_SendMessage(t *testing.T) {
	t.Parallel()

	srv, captured := upstreamStub(t, "That sounds stressful. What part feels heaviest right now?")
	repo := newFakeChatRepo()
	svc := NewChatService(repo, testAIConfig(srv.URL))
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "u1", "red", "")
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	if session.Personality != model.PersonalityRed {
		t.Errorf("personality = %s, want red", session.Personality)
	}
	if session.Title != "New chat" {
		t.Errorf("default title = %q", session.Title)
	}

	reply, err := svc.SendMessage(ctx, "u1", session.ID, "I can't start my essay")
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if reply.Role != model.RoleAssistant || reply.Content == "" {
		t.Fatalf("unexpected reply: %+v", reply)
	}

	// user turn then assistant turn, in order
	msgs, err := svc.ListMessages(ctx, "u1", session.ID)
	if err != nil {
		t.Fatalf("ListMessages() error = %v", err)
	}
	if len(msgs) != 2 || msgs[0].Role != model.RoleUser || msgs[1].Role != model.RoleAssistant {
		t.Fatalf("stored turns wrong: %+v", msgs)
	}

	// upstream request: system prompt first, then the user's turn
	if len(captured.Messages) < 2 || captured.Messages[0].Role != "system" {
		t.Fatalf("unexpected upstream messages: %+v", captured.Messages)
	}
	if captured.Messages[len(captured.Messages)-1].Content != "I can't start my essay" {
		t.Error("user turn missing from upstream request")
	}
	if captured.ResponseFormat != nil {
		t.Error("chat must not force JSON mode")
	}
	if captured.Temperature == 2.0 {
		t.Error("chat should not use the suggestion sampling temperature")
	}
}

func TestChatService_HistoryReplayedInOrder(t *testing.T) {
	t.Parallel()

	srv, captured := upstreamStub(t, "ok")
	repo := newFakeChatRepo()
	svc := NewChatService(repo, testAIConfig(srv.URL))
	ctx := context.Background()

	session, _ := svc.StartSession(ctx, "u1", "green", "essay panic")
	repo.messages = []*model.ChatMessage{
		{SessionID: session.ID, Role: model.RoleUser, Content: "first"},
		{SessionID: session.ID, Role: model.RoleAssistant, Content: "second"},
	}

	if _, err := svc.SendMessage(ctx, "u1", session.ID, "third"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}

	var contents []string
	for _, m := range captured.Messages {
		contents = append(contents, m.Content)
	}
	joined := strings.Join(contents, "|")
	first := strings.Index(joined, "first")
	second := strings.Index(joined, "second")
	third := strings.LastIndex(joined, "third")
	if first == -1 || second == -1 || third == -1 || !(first < second && second < third) {
		t.Errorf("history order wrong in upstream request: %v", contents)
	}
}

func TestChatService_OwnershipAndMissing(t *testing.T) {
	t.Parallel()

	srv, _ := upstreamStub(t, "ok")
	repo := newFakeChatRepo()
	svc := NewChatService(repo, testAIConfig(srv.URL))
	ctx := context.Background()

	session, _ := svc.StartSession(ctx, "u1", "green", "t")

	if _, err := svc.SendMessage(ctx, "intruder", session.ID, "hi"); !errors.Is(err, ErrNotOwner) {
		t.Errorf("foreign user: error = %v, want ErrNotOwner", err)
	}
	if _, err := svc.SendMessage(ctx, "u1", "missing", "hi"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("missing session: error = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.SendMessage(ctx, "u1", session.ID, "   "); err == nil {
		t.Error("blank message should be rejected")
	}
}

func TestChatService_DeleteSessionRemovesMessages(t *testing.T) {
	t.Parallel()

	srv, _ := upstreamStub(t, "ok")
	repo := newFakeChatRepo()
	svc := NewChatService(repo, testAIConfig(srv.URL))
	ctx := context.Background()

	session, _ := svc.StartSession(ctx, "u1", "yellow", "t")
	if _, err := svc.SendMessage(ctx, "u1", session.ID, "hello"); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}

	if err := svc.DeleteSession(ctx, "u1", session.ID); err != nil {
		t.Fatalf("DeleteSession() error = %v", err)
	}
	if len(repo.messages) != 0 {
		t.Errorf("messages not cascaded: %+v", repo.messages)
	}
	if _, err := svc.GetSession(ctx, "u1", session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("session still present after delete: %v", err)
	}
}
