package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// captureJobRepo records the filter the search handler builds.
type captureJobRepo struct {
	lastFilter repositories.JobFilter
}

func (r *captureJobRepo) Create(_ context.Context, _ *models.Job) error { return nil }

func (r *captureJobRepo) GetByID(_ context.Context, _ uint) (*models.Job, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *captureJobRepo) Update(_ context.Context, _ *models.Job) error { return nil }

func (r *captureJobRepo) Delete(_ context.Context, _ uint) error { return nil }

func (r *captureJobRepo) Search(_ context.Context, filter repositories.JobFilter, _, _ int) ([]*models.Job, int64, error) {
	r.lastFilter = filter
	return nil, 0, nil
}

func (r *captureJobRepo) ListByEmployer(_ context.Context, _ uint, _, _ int) ([]*models.Job, int64, error) {
	return nil, 0, nil
}

func (r *captureJobRepo) ListRecentActive(_ context.Context, _ int) ([]*models.Job, error) {
	return nil, nil
}

func (r *captureJobRepo) ListAll(_ context.Context) ([]*models.Job, error) { return nil, nil }

func (r *captureJobRepo) CountActive(_ context.Context) (int64, error) { return 0, nil }

func (r *captureJobRepo) DeactivateExpired(_ context.Context) (int64, error) { return 0, nil }

func TestSearch_KeywordParam(t *testing.T) {
	repo := &captureJobRepo{}
	handler := NewJobHandler(services.NewJobService(repo), services.NewApplicationService(nil, nil))

	app := fiber.New()
	app.Get("/jobs", handler.Search)

	cases := []struct {
		url  string
		want string
	}{
		{"/jobs?keywords=engineer", "engineer"},
		{"/jobs?q=devops", "devops"}, // legacy alias
		{"/jobs?keywords=nurse&q=devops", "nurse"},
		{"/jobs", ""},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.url, nil))
		if err != nil {
			t.Fatalf("%s: request failed: %v", tc.url, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("%s: status %d", tc.url, resp.StatusCode)
		}
		if repo.lastFilter.Keywords != tc.want {
			t.Fatalf("%s: filter keywords %q, want %q", tc.url, repo.lastFilter.Keywords, tc.want)
		}
	}
}
