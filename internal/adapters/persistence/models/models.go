package models

import (
	"fmt"
	"time"

	"careerhub/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table. Accounts are never hard-deleted; moderation
// flips IsActive instead.
type User struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Username    string      `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email       string      `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password    string      `gorm:"size:255;not null" json:"-"`
	FirstName   string      `gorm:"size:64;not null" json:"first_name"`
	LastName    string      `gorm:"size:64;not null" json:"last_name"`
	Role        domain.Role `gorm:"size:20;not null;default:'job_seeker'" json:"role"`
	CompanyName *string     `gorm:"size:100" json:"company_name,omitempty"`
	Phone       *string     `gorm:"size:20" json:"phone,omitempty"`
	Location    *string     `gorm:"size:100" json:"location,omitempty"`
	IsActive    bool        `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID          uint        `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Role        domain.Role `json:"role"`
	CompanyName *string     `json:"company_name,omitempty"`
	Phone       *string     `json:"phone,omitempty"`
	Location    *string     `json:"location,omitempty"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Role:        u.Role,
		CompanyName: u.CompanyName,
		Phone:       u.Phone,
		Location:    u.Location,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

// Actor returns the policy actor for this user.
func (u *User) Actor() domain.Actor {
	return domain.Actor{ID: u.ID, Role: u.Role}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Job Catalog
// ============================================================

// Job represents jobs table. IsActive is a soft visibility switch; deleting
// a job is a hard delete that cascades to its applications.
type Job struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Title        string          `gorm:"size:200;not null" json:"title"`
	Company      string          `gorm:"size:100;not null" json:"company"`
	Description  string          `gorm:"type:text;not null" json:"description"`
	Requirements string          `gorm:"type:text" json:"requirements,omitempty"`
	SalaryMin    *int            `json:"salary_min,omitempty"`
	SalaryMax    *int            `json:"salary_max,omitempty"`
	Location     string          `gorm:"size:100;not null" json:"location"`
	Category     domain.Category `gorm:"size:50;not null;index" json:"category"`
	JobType      domain.JobType  `gorm:"size:30;not null;default:'full-time';index" json:"job_type"`
	PostedDate   time.Time       `gorm:"autoCreateTime;index" json:"posted_date"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
	IsActive     bool            `gorm:"default:true;index" json:"is_active"`
	EmployerID   uint            `gorm:"not null;index" json:"employer_id"`

	// Relations
	Employer     *User         `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}

// SalaryRange renders the salary bounds for display.
func (j *Job) SalaryRange() string {
	switch {
	case j.SalaryMin != nil && j.SalaryMax != nil:
		return fmt.Sprintf("$%d - $%d", *j.SalaryMin, *j.SalaryMax)
	case j.SalaryMin != nil:
		return fmt.Sprintf("$%d+", *j.SalaryMin)
	case j.SalaryMax != nil:
		return fmt.Sprintf("Up to $%d", *j.SalaryMax)
	}
	return "Salary not specified"
}

// JobResponse DTO
type JobResponse struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Company      string          `json:"company"`
	Description  string          `json:"description"`
	Requirements string          `json:"requirements,omitempty"`
	SalaryMin    *int            `json:"salary_min,omitempty"`
	SalaryMax    *int            `json:"salary_max,omitempty"`
	SalaryRange  string          `json:"salary_range"`
	Location     string          `json:"location"`
	Category     domain.Category `json:"category"`
	JobType      domain.JobType  `json:"job_type"`
	PostedDate   time.Time       `json:"posted_date"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
	IsActive     bool            `json:"is_active"`
	EmployerID   uint            `json:"employer_id"`
	EmployerName string          `json:"employer_name,omitempty"`
}

func (j *Job) ToResponse() *JobResponse {
	resp := &JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Company:      j.Company,
		Description:  j.Description,
		Requirements: j.Requirements,
		SalaryMin:    j.SalaryMin,
		SalaryMax:    j.SalaryMax,
		SalaryRange:  j.SalaryRange(),
		Location:     j.Location,
		Category:     j.Category,
		JobType:      j.JobType,
		PostedDate:   j.PostedDate,
		Deadline:     j.Deadline,
		IsActive:     j.IsActive,
		EmployerID:   j.EmployerID,
	}

	if j.Employer != nil {
		resp.EmployerName = j.Employer.Username
	}

	return resp
}

// ============================================================
// Application Ledger
// ============================================================

// Application represents applications table. The compound unique index on
// (user_id, job_id) is the race-safety mechanism against duplicate applies.
type Application struct {
	ID           uint                     `gorm:"primaryKey" json:"id"`
	UserID       uint                     `gorm:"not null;uniqueIndex:uq_user_job" json:"user_id"`
	JobID        uint                     `gorm:"not null;uniqueIndex:uq_user_job" json:"job_id"`
	CoverLetter  string                   `gorm:"type:text" json:"cover_letter,omitempty"`
	ResumeText   string                   `gorm:"type:text" json:"resume_text,omitempty"`
	Status       domain.ApplicationStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	AppliedDate  time.Time                `gorm:"autoCreateTime;index" json:"applied_date"`
	ReviewedDate *time.Time               `json:"reviewed_date,omitempty"`

	// Relations
	Applicant *User `gorm:"foreignKey:UserID" json:"applicant,omitempty"`
	Job       *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}

// ApplicationResponse DTO
type ApplicationResponse struct {
	ID            uint                     `json:"id"`
	UserID        uint                     `json:"user_id"`
	JobID         uint                     `json:"job_id"`
	CoverLetter   string                   `json:"cover_letter,omitempty"`
	ResumeText    string                   `json:"resume_text,omitempty"`
	Status        domain.ApplicationStatus `json:"status"`
	AppliedDate   time.Time                `json:"applied_date"`
	ReviewedDate  *time.Time               `json:"reviewed_date,omitempty"`
	ApplicantName string                   `json:"applicant_name,omitempty"`
	JobTitle      string                   `json:"job_title,omitempty"`
	JobCompany    string                   `json:"job_company,omitempty"`
}

func (a *Application) ToResponse() *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		JobID:        a.JobID,
		CoverLetter:  a.CoverLetter,
		ResumeText:   a.ResumeText,
		Status:       a.Status,
		AppliedDate:  a.AppliedDate,
		ReviewedDate: a.ReviewedDate,
	}

	if a.Applicant != nil {
		resp.ApplicantName = a.Applicant.Username
	}
	if a.Job != nil {
		resp.JobTitle = a.Job.Title
		resp.JobCompany = a.Job.Company
	}

	return resp
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&Job{},
		&Application{},
	)
}
