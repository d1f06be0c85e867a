package service

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/multirole/auth-api/internal/core/domain"
	"github.com/multirole/auth-api/internal/core/ports"
)

type stubUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// mimics the unique index on username
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = strconv.Itoa(r.nextID)
	r.users[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindActiveByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[username]; ok && u.Active {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, *u)
	}
	return all, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == user.ID {
			u.Email = user.Email
			u.Role = user.Role
			return 1, nil
		}
	}
	return 0, nil
}

func (r *stubUserRepo) Deactivate(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id && u.Active {
			u.Active = false
			return 1, nil
		}
	}
	return 0, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) CountActive(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Active {
			n++
		}
	}
	return n, nil
}

func (r *stubUserRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type recordedAudit struct {
	userID, username, action string
	status                   domain.AuditStatus
}

type stubAuditRecorder struct {
	mu      sync.Mutex
	entries []recordedAudit
}

func (s *stubAuditRecorder) LogSuccess(_ context.Context, userID, username, action, _, _ string) {
	s.append(recordedAudit{userID: userID, username: username, action: action, status: domain.AuditSuccess})
}

func (s *stubAuditRecorder) LogFailure(_ context.Context, userID, username, action, _, _, _ string) {
	s.append(recordedAudit{userID: userID, username: username, action: action, status: domain.AuditFailure})
}

func (s *stubAuditRecorder) LogError(_ context.Context, userID, username, action, _, _, _ string) {
	s.append(recordedAudit{userID: userID, username: username, action: action, status: domain.AuditError})
}

func (s *stubAuditRecorder) append(e recordedAudit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

func newTestAuthService() (*AuthService, *stubUserRepo, *stubAuditRecorder) {
	repo := newStubUserRepo()
	audit := &stubAuditRecorder{}
	return NewAuthService(repo, NewBcryptHasher(4), audit), repo, audit
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, audit := newTestAuthService()

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Password: "Secret123", Email: "a@x.com", Role: domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !user.Active {
		t.Fatalf("expected new user to be active")
	}
	if user.PasswordHash == "Secret123" || user.PasswordHash == "" {
		t.Fatalf("expected password to be hashed, got %q", user.PasswordHash)
	}
	if len(audit.entries) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(audit.entries))
	}
	if e := audit.entries[0]; e.action != domain.ActionUserRegister || e.status != domain.AuditSuccess || e.userID != user.ID {
		t.Fatalf("unexpected audit entry: %+v", e)
	}
}

func TestAuthService_Register_DefaultRole(t *testing.T) {
	svc, _, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Password: "Secret123", Email: "b@x.com",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role USER, got %s", user.Role)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Password: "Secret123", Email: "b@x.com",
	}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Password: "Other1234", Email: "b2@x.com",
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

// The lookup pre-check and the insert are not atomic; when concurrent
// registrations race past the pre-check, the store's unique constraint must
// leave exactly one winner and everyone else gets ErrUserExists.
func TestAuthService_Register_ConcurrentSameUsername(t *testing.T) {
	svc, repo, _ := newTestAuthService()

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(context.Background(), ports.RegisterInput{
				Username: "carol", Password: "Secret123", Email: "c@x.com",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch err {
		case nil:
			ok++
		case domain.ErrUserExists:
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || dup != attempts-1 {
		t.Fatalf("expected 1 success and %d duplicates, got %d/%d", attempts-1, ok, dup)
	}
	if n, _ := repo.Count(context.Background()); n != 1 {
		t.Fatalf("expected exactly one stored user, got %d", n)
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "dave", Password: "Secret123", Email: "d@x.com", Role: domain.RoleSales,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "dave", "Secret123")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user == nil || user.Username != "dave" || user.Role != domain.RoleSales {
		t.Fatalf("unexpected user: %+v", user)
	}
}

// Unknown username and wrong password must be indistinguishable: both come
// back as (nil, nil).
func TestAuthService_Authenticate_NonEnumeration(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Username: "erin", Password: "Secret123", Email: "e@x.com",
	})

	for _, tc := range []struct{ username, password string }{
		{"nonexistent", "anything"},
		{"erin", "wrongpassword"},
	} {
		user, err := svc.Authenticate(context.Background(), tc.username, tc.password)
		if err != nil {
			t.Fatalf("Authenticate(%s) returned error: %v", tc.username, err)
		}
		if user != nil {
			t.Fatalf("Authenticate(%s) unexpectedly succeeded", tc.username)
		}
	}
}

func TestAuthService_Authenticate_InactiveUser(t *testing.T) {
	svc, repo, _ := newTestAuthService()

	created, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "frank", Password: "Secret123", Email: "f@x.com",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := repo.Deactivate(context.Background(), created.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "frank", "Secret123")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected inactive user to fail authentication")
	}
}
