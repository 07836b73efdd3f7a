package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"soothe/internal/model"
)

type fakeUserRepo struct {
	users map[string]*model.User // by ID
	next  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) (string, error) {
	r.next++
	user.ID = fmt.Sprintf("user-%d", r.next)
	cp := *user
	r.users[user.ID] = &cp
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func TestAuthService_RegisterLoginRoundTrip(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	reg, err := svc.Register(ctx, &model.RegisterRequest{
		Email:       "  Ana@Example.COM ",
		Password:    "hunter2hunter2",
		DisplayName: "Ana",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if reg.Token == "" || reg.User.ID == "" {
		t.Fatalf("Register() incomplete response: %+v", reg)
	}
	if reg.User.Email != "ana@example.com" {
		t.Errorf("email not normalized: %s", reg.User.Email)
	}
	if reg.User.PasswordHash == "hunter2hunter2" {
		t.Error("password stored unhashed")
	}

	login, err := svc.Login(ctx, "ana@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	claims, err := svc.ValidateToken(login.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != reg.User.ID || claims.Email != "ana@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, &model.RegisterRequest{Email: "a@b.c", Password: "password123"}); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	_, err := svc.Register(ctx, &model.RegisterRequest{Email: "A@B.C", Password: "password456"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("error = %v, want ErrEmailTaken", err)
	}
}

func TestAuthService_BadCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())
	ctx := context.Background()

	if _, err := svc.Register(ctx, &model.RegisterRequest{Email: "a@b.c", Password: "password123"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := svc.Login(ctx, "a@b.c", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@b.c", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_InvalidToken(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo())

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("ValidateToken(%q) error = %v, want ErrInvalidToken", tok, err)
		}
	}
}
