package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/core/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the same error
// translation the production MySQL connection uses.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// One connection keeps every statement on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string, role domain.Role) *models.User {
	t.Helper()
	user := &models.User{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "hash",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		IsActive:  true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", username, err)
	}
	return user
}

func seedJob(t *testing.T, db *gorm.DB, employerID uint, title string, active bool, postedAt time.Time) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:       title,
		Company:     "Acme Corp",
		Description: "Build and run services",
		Location:    "Bangkok",
		Category:    domain.CategoryTechnology,
		JobType:     domain.JobTypeFullTime,
		PostedDate:  postedAt,
		IsActive:    active,
		EmployerID:  employerID,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("failed to seed job %s: %v", title, err)
	}
	return job
}

func TestUserRepository_UniqueUsernameAndEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{Username: "alice", Email: "alice@example.com", Password: "h", FirstName: "A", LastName: "B", Role: domain.RoleJobSeeker, IsActive: true}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	dupUsername := &models.User{Username: "alice", Email: "other@example.com", Password: "h", FirstName: "A", LastName: "B", Role: domain.RoleJobSeeker}
	if err := repo.Create(ctx, dupUsername); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey for duplicate username, got %v", err)
	}

	dupEmail := &models.User{Username: "bob", Email: "alice@example.com", Password: "h", FirstName: "A", LastName: "B", Role: domain.RoleJobSeeker}
	if err := repo.Create(ctx, dupEmail); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey for duplicate email, got %v", err)
	}
}

func TestApplicationRepository_CompoundUniqueness(t *testing.T) {
	db := newTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	seekerA := seedUser(t, db, "seeker_a", domain.RoleJobSeeker)
	seekerB := seedUser(t, db, "seeker_b", domain.RoleJobSeeker)
	boss := seedUser(t, db, "boss", domain.RoleEmployer)
	job1 := seedJob(t, db, boss.ID, "Job One", true, time.Now())
	job2 := seedJob(t, db, boss.ID, "Job Two", true, time.Now())

	if err := repo.Create(ctx, &models.Application{UserID: seekerA.ID, JobID: job1.ID, Status: domain.StatusPending}); err != nil {
		t.Fatalf("first application failed: %v", err)
	}

	// Same user, same job: rejected by the compound index.
	err := repo.Create(ctx, &models.Application{UserID: seekerA.ID, JobID: job1.ID, Status: domain.StatusPending})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}

	// Same user to a different job, and a different user to the same job,
	// are both fine.
	if err := repo.Create(ctx, &models.Application{UserID: seekerA.ID, JobID: job2.ID, Status: domain.StatusPending}); err != nil {
		t.Fatalf("same user, different job failed: %v", err)
	}
	if err := repo.Create(ctx, &models.Application{UserID: seekerB.ID, JobID: job1.ID, Status: domain.StatusPending}); err != nil {
		t.Fatalf("different user, same job failed: %v", err)
	}
}

func TestJobRepository_DeleteCascadesToApplications(t *testing.T) {
	db := newTestDB(t)
	jobRepo := NewJobRepository(db)
	appRepo := NewApplicationRepository(db)
	ctx := context.Background()

	seeker := seedUser(t, db, "seeker", domain.RoleJobSeeker)
	boss := seedUser(t, db, "boss", domain.RoleEmployer)
	doomed := seedJob(t, db, boss.ID, "Doomed Job", true, time.Now())
	survivor := seedJob(t, db, boss.ID, "Surviving Job", true, time.Now())

	for _, jobID := range []uint{doomed.ID, survivor.ID} {
		if err := appRepo.Create(ctx, &models.Application{UserID: seeker.ID, JobID: jobID, Status: domain.StatusPending}); err != nil {
			t.Fatalf("application seed failed: %v", err)
		}
	}

	if err := jobRepo.Delete(ctx, doomed.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var orphanCount int64
	if err := db.Model(&models.Application{}).Where("job_id = ?", doomed.ID).Count(&orphanCount).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if orphanCount != 0 {
		t.Fatalf("expected no orphan applications, found %d", orphanCount)
	}

	// The other job and its application are untouched.
	if _, err := jobRepo.GetByID(ctx, survivor.ID); err != nil {
		t.Fatalf("surviving job missing: %v", err)
	}
	exists, err := appRepo.ExistsByUserAndJob(ctx, seeker.ID, survivor.ID)
	if err != nil || !exists {
		t.Fatalf("surviving application missing (exists=%t, err=%v)", exists, err)
	}
}

func TestJobRepository_SearchFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobRepository(db)
	ctx := context.Background()

	boss := seedUser(t, db, "boss", domain.RoleEmployer)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	golang := seedJob(t, db, boss.ID, "Go Developer", true, base.Add(3*time.Hour))
	nurse := seedJob(t, db, boss.ID, "Registered Nurse", true, base.Add(2*time.Hour))
	nurse.Category = domain.CategoryHealthcare
	nurse.Location = "Phuket"
	if err := repo.Update(ctx, nurse); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	seedJob(t, db, boss.ID, "Go Platform Engineer", false, base.Add(4*time.Hour))
	intern := seedJob(t, db, boss.ID, "Design Intern", true, base.Add(1*time.Hour))
	intern.JobType = domain.JobTypeInternship
	if err := repo.Update(ctx, intern); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	// Keyword matches title case-insensitively; inactive jobs never appear.
	jobs, total, err := repo.Search(ctx, JobFilter{Keywords: "go"}, 0, 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || len(jobs) != 1 || jobs[0].ID != golang.ID {
		t.Fatalf("keyword search returned %d jobs (total %d)", len(jobs), total)
	}

	// Keyword also matches description.
	if _, total, _ = repo.Search(ctx, JobFilter{Keywords: "RUN SERVICES"}, 0, 10); total != 3 {
		t.Fatalf("description keyword should match all 3 active jobs, got %d", total)
	}

	// Filters are ANDed.
	_, total, err = repo.Search(ctx, JobFilter{Category: domain.CategoryHealthcare, Location: "phu"}, 0, 10)
	if err != nil || total != 1 {
		t.Fatalf("combined filter expected 1, got %d (err %v)", total, err)
	}
	_, total, _ = repo.Search(ctx, JobFilter{Category: domain.CategoryHealthcare, JobType: domain.JobTypeInternship}, 0, 10)
	if total != 0 {
		t.Fatalf("contradictory filter should match nothing, got %d", total)
	}

	// No filter: everything active, newest first.
	jobs, total, err = repo.Search(ctx, JobFilter{}, 0, 10)
	if err != nil {
		t.Fatalf("unfiltered search failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 active jobs, got %d", total)
	}
	if jobs[0].ID != golang.ID || jobs[2].ID != intern.ID {
		t.Fatalf("jobs not ordered newest first: %d, %d, %d", jobs[0].ID, jobs[1].ID, jobs[2].ID)
	}

	// Out-of-range offset yields an empty page, not an error.
	jobs, _, err = repo.Search(ctx, JobFilter{}, 30, 10)
	if err != nil || len(jobs) != 0 {
		t.Fatalf("expected empty page, got %d jobs (err %v)", len(jobs), err)
	}
}

func TestJobRepository_DeactivateExpired(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobRepository(db)
	ctx := context.Background()

	boss := seedUser(t, db, "boss", domain.RoleEmployer)

	past := time.Now().Add(-48 * time.Hour)
	future := time.Now().Add(48 * time.Hour)

	expired := seedJob(t, db, boss.ID, "Expired", true, time.Now())
	expired.Deadline = &past
	if err := repo.Update(ctx, expired); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	current := seedJob(t, db, boss.ID, "Current", true, time.Now())
	current.Deadline = &future
	if err := repo.Update(ctx, current); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	open := seedJob(t, db, boss.ID, "No Deadline", true, time.Now())

	n, err := repo.DeactivateExpired(ctx)
	if err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 job deactivated, got %d", n)
	}

	for _, tc := range []struct {
		id   uint
		want bool
	}{{expired.ID, false}, {current.ID, true}, {open.ID, true}} {
		job, err := repo.GetByID(ctx, tc.id)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if job.IsActive != tc.want {
			t.Fatalf("job %d active=%t, want %t", tc.id, job.IsActive, tc.want)
		}
	}
}

// TestJobApplicationLifecycle walks a posting through its whole life: the
// seeker applies, the employer accepts, a duplicate application is rejected,
// and a deactivated job disappears from search while its detail page (and the
// accepted application) stay reachable.
func TestJobApplicationLifecycle(t *testing.T) {
	db := newTestDB(t)
	jobRepo := NewJobRepository(db)
	appRepo := NewApplicationRepository(db)
	ctx := context.Background()

	seeker := seedUser(t, db, "candidate", domain.RoleJobSeeker)
	boss := seedUser(t, db, "boss", domain.RoleEmployer)
	job := seedJob(t, db, boss.ID, "Backend Engineer", true, time.Now())

	application := &models.Application{UserID: seeker.ID, JobID: job.ID, Status: domain.StatusPending}
	if err := appRepo.Create(ctx, application); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	now := time.Now()
	application.Status = domain.StatusAccepted
	application.ReviewedDate = &now
	if err := appRepo.Update(ctx, application); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	accepted, err := appRepo.GetByID(ctx, application.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if accepted.Status != domain.StatusAccepted || accepted.ReviewedDate == nil {
		t.Fatalf("acceptance not persisted: status=%q reviewed=%v", accepted.Status, accepted.ReviewedDate)
	}

	// A second application from the same seeker is rejected outright.
	dup := &models.Application{UserID: seeker.ID, JobID: job.ID, Status: domain.StatusPending}
	if err := appRepo.Create(ctx, dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey for duplicate apply, got %v", err)
	}

	// Deactivation hides the job from search but not from direct lookup.
	job.IsActive = false
	if err := jobRepo.Update(ctx, job); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if _, total, err := jobRepo.Search(ctx, JobFilter{}, 0, 10); err != nil || total != 0 {
		t.Fatalf("inactive job still in search (total=%d, err=%v)", total, err)
	}
	hidden, err := jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("inactive job must still resolve by id: %v", err)
	}
	if hidden.IsActive {
		t.Fatal("job should be inactive")
	}

	// The accepted application survives the deactivation.
	if _, err := appRepo.GetByID(ctx, application.ID); err != nil {
		t.Fatalf("application lost after deactivation: %v", err)
	}
}

func TestRefreshTokenRepository_RevokeAndPurge(t *testing.T) {
	db := newTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "tokenuser", domain.RoleJobSeeker)

	live := &models.RefreshToken{UserID: user.ID, TokenHash: "live", ExpiresAt: time.Now().Add(time.Hour)}
	stale := &models.RefreshToken{UserID: user.ID, TokenHash: "stale", ExpiresAt: time.Now().Add(-time.Hour)}
	for _, tok := range []*models.RefreshToken{live, stale} {
		if err := repo.Create(ctx, tok); err != nil {
			t.Fatalf("token create failed: %v", err)
		}
	}

	n, err := repo.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 token purged, got %d", n)
	}

	if _, err := repo.GetByTokenHash(ctx, "live"); err != nil {
		t.Fatalf("live token should survive the purge: %v", err)
	}

	if err := repo.RevokeAllByUserID(ctx, user.ID); err != nil {
		t.Fatalf("revoke-all failed: %v", err)
	}
	if _, err := repo.GetByTokenHash(ctx, "live"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("revoked token should not resolve, got %v", err)
	}
}
