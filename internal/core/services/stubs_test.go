package services

import (
	"context"
	"sort"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/config"

	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

// ------------------------------------------------------------
// stubUserRepo
// ------------------------------------------------------------

type stubUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) List(_ context.Context, offset, limit int) ([]*models.User, int64, error) {
	all := r.sorted()
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *stubUserRepo) ListRecent(_ context.Context, limit int) ([]*models.User, error) {
	all := r.sorted()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) sorted() []*models.User {
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// ------------------------------------------------------------
// stubTokenRepo
// ------------------------------------------------------------

type stubTokenRepo struct {
	tokens map[uint]*models.RefreshToken
	nextID uint
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{tokens: make(map[uint]*models.RefreshToken), nextID: 1}
}

func (r *stubTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	token.ID = r.nextID
	r.nextID++
	clone := *token
	r.tokens[token.ID] = &clone
	return nil
}

func (r *stubTokenRepo) GetByTokenHash(_ context.Context, hash string) (*models.RefreshToken, error) {
	for _, t := range r.tokens {
		if t.TokenHash == hash && t.RevokedAt == nil {
			clone := *t
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTokenRepo) Revoke(_ context.Context, id uint) error {
	t, ok := r.tokens[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	t.RevokedAt = &now
	return nil
}

func (r *stubTokenRepo) RevokeByTokenHash(_ context.Context, hash string) error {
	now := time.Now()
	for _, t := range r.tokens {
		if t.TokenHash == hash {
			t.RevokedAt = &now
		}
	}
	return nil
}

func (r *stubTokenRepo) RevokeAllByUserID(_ context.Context, userID uint) error {
	now := time.Now()
	for _, t := range r.tokens {
		if t.UserID == userID && t.RevokedAt == nil {
			t.RevokedAt = &now
		}
	}
	return nil
}

func (r *stubTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	var n int64
	for id, t := range r.tokens {
		if time.Now().After(t.ExpiresAt) {
			delete(r.tokens, id)
			n++
		}
	}
	return n, nil
}

func (r *stubTokenRepo) activeCount(userID uint) int {
	n := 0
	for _, t := range r.tokens {
		if t.UserID == userID && t.RevokedAt == nil {
			n++
		}
	}
	return n
}

// ------------------------------------------------------------
// stubJobRepo
// ------------------------------------------------------------

type stubJobRepo struct {
	jobs   map[uint]*models.Job
	nextID uint
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[uint]*models.Job), nextID: 1}
}

func (r *stubJobRepo) Create(_ context.Context, job *models.Job) error {
	job.ID = r.nextID
	r.nextID++
	if job.PostedDate.IsZero() {
		job.PostedDate = time.Now()
	}
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *stubJobRepo) GetByID(_ context.Context, id uint) (*models.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) Update(_ context.Context, job *models.Job) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *stubJobRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.jobs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *stubJobRepo) Search(_ context.Context, filter repositories.JobFilter, offset, limit int) ([]*models.Job, int64, error) {
	var matched []*models.Job
	for _, j := range r.sorted() {
		if !j.IsActive {
			continue
		}
		if filter.Category != "" && j.Category != filter.Category {
			continue
		}
		if filter.JobType != "" && j.JobType != filter.JobType {
			continue
		}
		matched = append(matched, j)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *stubJobRepo) ListByEmployer(_ context.Context, employerID uint, offset, limit int) ([]*models.Job, int64, error) {
	var matched []*models.Job
	for _, j := range r.sorted() {
		if j.EmployerID == employerID {
			matched = append(matched, j)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *stubJobRepo) ListRecentActive(_ context.Context, limit int) ([]*models.Job, error) {
	var matched []*models.Job
	for _, j := range r.sorted() {
		if j.IsActive {
			matched = append(matched, j)
		}
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *stubJobRepo) ListAll(_ context.Context) ([]*models.Job, error) {
	return r.sorted(), nil
}

func (r *stubJobRepo) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, j := range r.jobs {
		if j.IsActive {
			n++
		}
	}
	return n, nil
}

func (r *stubJobRepo) DeactivateExpired(_ context.Context) (int64, error) {
	var n int64
	for _, j := range r.jobs {
		if j.IsActive && j.Deadline != nil && j.Deadline.Before(time.Now()) {
			j.IsActive = false
			n++
		}
	}
	return n, nil
}

func (r *stubJobRepo) sorted() []*models.Job {
	out := make([]*models.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		clone := *j
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PostedDate.After(out[j].PostedDate) })
	return out
}

// ------------------------------------------------------------
// stubApplicationRepo
// ------------------------------------------------------------

type stubApplicationRepo struct {
	apps   map[uint]*models.Application
	jobs   *stubJobRepo
	nextID uint
}

func newStubApplicationRepo(jobs *stubJobRepo) *stubApplicationRepo {
	return &stubApplicationRepo{apps: make(map[uint]*models.Application), jobs: jobs, nextID: 1}
}

func (r *stubApplicationRepo) Create(_ context.Context, application *models.Application) error {
	for _, a := range r.apps {
		if a.UserID == application.UserID && a.JobID == application.JobID {
			return gorm.ErrDuplicatedKey
		}
	}
	application.ID = r.nextID
	r.nextID++
	if application.AppliedDate.IsZero() {
		application.AppliedDate = time.Now()
	}
	clone := *application
	r.apps[application.ID] = &clone
	return nil
}

func (r *stubApplicationRepo) GetByID(_ context.Context, id uint) (*models.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *a
	if job, ok := r.jobs.jobs[a.JobID]; ok {
		jobClone := *job
		clone.Job = &jobClone
	}
	return &clone, nil
}

func (r *stubApplicationRepo) GetByUserAndJob(_ context.Context, userID, jobID uint) (*models.Application, error) {
	for _, a := range r.apps {
		if a.UserID == userID && a.JobID == jobID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubApplicationRepo) Update(_ context.Context, application *models.Application) error {
	if _, ok := r.apps[application.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *application
	clone.Job = nil
	r.apps[application.ID] = &clone
	return nil
}

func (r *stubApplicationRepo) ListByJob(_ context.Context, jobID uint, offset, limit int) ([]*models.Application, int64, error) {
	var matched []*models.Application
	for _, a := range r.sorted() {
		if a.JobID == jobID {
			matched = append(matched, a)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *stubApplicationRepo) ListByUser(_ context.Context, userID uint, offset, limit int) ([]*models.Application, int64, error) {
	var matched []*models.Application
	for _, a := range r.sorted() {
		if a.UserID == userID {
			matched = append(matched, a)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *stubApplicationRepo) ListRecentByEmployer(_ context.Context, employerID uint, limit int) ([]*models.Application, error) {
	var matched []*models.Application
	for _, a := range r.sorted() {
		if job, ok := r.jobs.jobs[a.JobID]; ok && job.EmployerID == employerID {
			matched = append(matched, a)
		}
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *stubApplicationRepo) ListRecent(_ context.Context, limit int) ([]*models.Application, error) {
	matched := r.sorted()
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *stubApplicationRepo) ExistsByUserAndJob(_ context.Context, userID, jobID uint) (bool, error) {
	for _, a := range r.apps {
		if a.UserID == userID && a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubApplicationRepo) sorted() []*models.Application {
	out := make([]*models.Application, 0, len(r.apps))
	for _, a := range r.apps {
		clone := *a
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedDate.After(out[j].AppliedDate) })
	return out
}
