package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
)

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.E(domain.KindAlreadyExists, "username already exists")
		}
	}
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.nextID++
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.E(domain.KindNotFound, "user not found")
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.E(domain.KindNotFound, "user not found")
	}
	return cloneUser(u), nil
}

func newIdentityService(repo ports.UserRepository) *IdentityService {
	return NewIdentityService(repo, NewTokenManager("secret", time.Hour), zerolog.Nop())
}

func TestIdentityService_SignUp_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newIdentityService(repo)

	user, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Username: "alice1", Password: "secret1", FullName: "Alice Wonder", Role: domain.RoleTourist,
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash != "" {
		t.Fatalf("returned user must not carry the password hash")
	}

	stored := repo.users[user.ID]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestIdentityService_SignUp_Validation(t *testing.T) {
	svc := newIdentityService(newStubUserRepo())

	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{Password: "x", Role: domain.RoleTourist}); domain.KindOf(err) != domain.KindInvalidArgument {
		t.Fatalf("missing username: expected invalid argument, got %v", err)
	}
	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{Username: "bob11", Role: domain.RoleTourist}); domain.KindOf(err) != domain.KindInvalidArgument {
		t.Fatalf("missing password: expected invalid argument, got %v", err)
	}
	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{Username: "bob11", Password: "x", Role: "manager"}); domain.KindOf(err) != domain.KindInvalidArgument {
		t.Fatalf("bad role: expected invalid argument, got %v", err)
	}
}

func TestIdentityService_SignUp_DuplicateUsername(t *testing.T) {
	svc := newIdentityService(newStubUserRepo())

	in := ports.SignUpInput{Username: "alice1", Password: "secret1", FullName: "Alice Wonder", Role: domain.RoleTourist}
	if _, err := svc.SignUp(context.Background(), in); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.SignUp(context.Background(), in); domain.KindOf(err) != domain.KindAlreadyExists {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestIdentityService_Login(t *testing.T) {
	repo := newStubUserRepo()
	svc := newIdentityService(repo)

	created, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Username: "alice1", Password: "secret1", FullName: "Alice Wonder", Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	result, err := svc.Login(context.Background(), "alice1", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, result.ID)
	}

	// The issued token verifies and names the user as subject.
	valid, err := svc.ValidateToken(context.Background(), result.Token)
	if err != nil || !valid {
		t.Fatalf("issued token must validate: valid=%v err=%v", valid, err)
	}

	if _, err := svc.Login(context.Background(), "ghost", "secret1"); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("unknown username: expected not found, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice1", "wrong"); domain.KindOf(err) != domain.KindInvalidArgument {
		t.Fatalf("wrong password: expected invalid argument, got %v", err)
	}
}

func TestIdentityService_ValidateToken_MalformedIsFalseNotError(t *testing.T) {
	svc := newIdentityService(newStubUserRepo())

	valid, err := svc.ValidateToken(context.Background(), "garbage")
	if err != nil {
		t.Fatalf("malformed token must not error: %v", err)
	}
	if valid {
		t.Fatalf("malformed token must not validate")
	}
}

func TestIdentityService_Lookups(t *testing.T) {
	repo := newStubUserRepo()
	svc := newIdentityService(repo)

	created, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Username: "tour1", Password: "secret1", FullName: "Tina Tourist", Role: domain.RoleTourist,
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	user, err := svc.GetUserByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("lookup must strip the password hash")
	}

	role, err := svc.GetUserRoleByID(context.Background(), created.ID)
	if err != nil || role != domain.RoleTourist {
		t.Fatalf("expected tourist role, got %v err=%v", role, err)
	}

	if _, err := svc.GetUserByID(context.Background(), 999); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.GetUserRoleByID(context.Background(), 999); domain.KindOf(err) != domain.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
