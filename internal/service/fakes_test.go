package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/careerpulse/internal/domain"
	"github.com/spec-kit/careerpulse/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository that enforces the same unique
// constraints the users table carries.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email || user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// fakeJobRepo is an in-memory JobRepository with the same owner-scoped
// semantics as the Postgres implementation: update/delete match id and owner
// together and report pgx.ErrNoRows on a miss.
type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]domain.JobApplication
}

var _ repository.JobRepository = (*fakeJobRepo)(nil)

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]domain.JobApplication)}
}

func (r *fakeJobRepo) Insert(_ context.Context, job *domain.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job.CreatedAt = time.Now()
	r.jobs[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *domain.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.jobs[job.ID]
	if !ok || existing.UserID != job.UserID {
		return pgx.ErrNoRows
	}
	job.CreatedAt = existing.CreatedAt
	r.jobs[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) ListByUser(_ context.Context, userID string) ([]domain.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.JobApplication
	for _, job := range r.jobs {
		if job.UserID == userID {
			result = append(result, job)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].AppliedDate.After(result[j].AppliedDate)
	})
	return result, nil
}

func (r *fakeJobRepo) Delete(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.jobs[id]
	if !ok || existing.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) CountByStatus(_ context.Context, userID string) (map[domain.JobStatus]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[domain.JobStatus]int)
	for _, job := range r.jobs {
		if job.UserID == userID {
			counts[job.Status]++
		}
	}
	return counts, nil
}
