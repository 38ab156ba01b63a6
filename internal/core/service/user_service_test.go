package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

type stubUserRepo struct {
	users   map[string]domain.User
	lookups int
	inserts int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.lookups++
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*ports.InsertResult, error) {
	r.inserts++
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.users[user.Email] = *user
	return &ports.InsertResult{InsertedID: "id-" + user.Email}, nil
}

func (r *stubUserRepo) PromoteByID(_ context.Context, id string) (*ports.UpdateResult, error) {
	for email, u := range r.users {
		if u.ID == id {
			u.Role = domain.RoleAdmin
			r.users[email] = u
			return &ports.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &ports.UpdateResult{}, nil
}

func TestUserService_Register_New(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	res, err := svc.Register(context.Background(), domain.User{Email: "a@x.com", Name: "Alice"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if res.Existed {
		t.Fatalf("expected a fresh insert")
	}
	if res.Insert == nil || res.Insert.InsertedID == "" {
		t.Fatalf("expected an inserted id, got %+v", res.Insert)
	}
	if got := repo.users["a@x.com"].Role; got != domain.RoleGuest {
		t.Fatalf("expected default guest role, got %q", got)
	}
}

func TestUserService_Register_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), domain.User{Email: "a@x.com"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	res, err := svc.Register(context.Background(), domain.User{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("second register failed: %v", err)
	}
	if !res.Existed {
		t.Fatalf("expected duplicate to report Existed")
	}
	if repo.inserts != 1 {
		t.Fatalf("expected exactly one insert, got %d", repo.inserts)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.users))
	}
}

func TestUserService_AdminStatus_CrossUserShortCircuit(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["other@x.com"] = domain.User{Email: "other@x.com", Role: domain.RoleAdmin}
	svc := NewUserService(repo, zerolog.Nop())

	admin, err := svc.AdminStatus(context.Background(), "self@x.com", "other@x.com")
	if err != nil {
		t.Fatalf("admin status failed: %v", err)
	}
	if admin {
		t.Fatalf("cross-user probe must report non-admin")
	}
	if repo.lookups != 0 {
		t.Fatalf("cross-user probe must not hit the store, got %d lookups", repo.lookups)
	}
}

func TestUserService_AdminStatus_Self(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["admin@x.com"] = domain.User{Email: "admin@x.com", Role: domain.RoleAdmin}
	repo.users["guest@x.com"] = domain.User{Email: "guest@x.com", Role: domain.RoleGuest}
	svc := NewUserService(repo, zerolog.Nop())

	admin, err := svc.AdminStatus(context.Background(), "admin@x.com", "admin@x.com")
	if err != nil || !admin {
		t.Fatalf("expected admin=true, got %v %v", admin, err)
	}

	admin, err = svc.AdminStatus(context.Background(), "guest@x.com", "guest@x.com")
	if err != nil || admin {
		t.Fatalf("expected admin=false for guest, got %v %v", admin, err)
	}

	admin, err = svc.AdminStatus(context.Background(), "ghost@x.com", "ghost@x.com")
	if err != nil || admin {
		t.Fatalf("expected admin=false for unknown user, got %v %v", admin, err)
	}
}

func TestUserService_Promote(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["a@x.com"] = domain.User{ID: "abc", Email: "a@x.com", Role: domain.RoleGuest}
	svc := NewUserService(repo, zerolog.Nop())

	res, err := svc.Promote(context.Background(), "abc")
	if err != nil {
		t.Fatalf("promote failed: %v", err)
	}
	if res.MatchedCount != 1 || res.ModifiedCount != 1 {
		t.Fatalf("unexpected update result: %+v", res)
	}
	if repo.users["a@x.com"].Role != domain.RoleAdmin {
		t.Fatalf("expected role to be admin after promotion")
	}
}

func TestUserService_Promote_Unknown(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	res, err := svc.Promote(context.Background(), "missing")
	if err != nil {
		t.Fatalf("promote failed: %v", err)
	}
	// The store result is reported verbatim, zero counts included.
	if res.MatchedCount != 0 || res.ModifiedCount != 0 {
		t.Fatalf("unexpected update result: %+v", res)
	}
}

// racingUserRepo reports not-found on lookup but duplicate on insert,
// simulating the unique email index winning a race the lookup lost.
type racingUserRepo struct {
	*stubUserRepo
}

func (r *racingUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *racingUserRepo) Insert(context.Context, *domain.User) (*ports.InsertResult, error) {
	return nil, domain.ErrUserExists
}

func TestUserService_Register_IndexRace(t *testing.T) {
	raced := &racingUserRepo{stubUserRepo: newStubUserRepo()}
	svc := NewUserService(raced, zerolog.Nop())

	res, err := svc.Register(context.Background(), domain.User{Email: "a@x.com"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !res.Existed {
		t.Fatalf("expected index race to report Existed, got %+v", res)
	}
}
