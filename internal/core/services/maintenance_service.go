package services

import (
	"context"
	"log"

	"careerhub/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// maintenanceSchedule runs the nightly sweep at 03:00 server time.
const maintenanceSchedule = "0 3 * * *"

// MaintenanceService runs periodic housekeeping: deactivating jobs whose
// deadline has passed and purging expired refresh tokens.
type MaintenanceService struct {
	cron             *cron.Cron
	jobRepo          repositories.JobRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	jobRepo repositories.JobRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) *MaintenanceService {
	return &MaintenanceService{
		cron:             cron.New(),
		jobRepo:          jobRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Start schedules the nightly sweep and starts the scheduler
func (s *MaintenanceService) Start() error {
	_, err := s.cron.AddFunc(maintenanceSchedule, func() {
		if err := s.RunOnce(context.Background()); err != nil {
			log.Printf("⚠️ Maintenance sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("🕒 Maintenance scheduler started (%s)", maintenanceSchedule)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish
func (s *MaintenanceService) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce executes a single maintenance sweep
func (s *MaintenanceService) RunOnce(ctx context.Context) error {
	deactivated, err := s.jobRepo.DeactivateExpired(ctx)
	if err != nil {
		return err
	}

	purged, err := s.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return err
	}

	log.Printf("🧹 Maintenance sweep: %d jobs deactivated, %d tokens purged", deactivated, purged)
	return nil
}
