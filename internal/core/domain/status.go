package domain

import "fmt"

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// ParseApplicationStatus converts a raw string into an ApplicationStatus.
// An unknown value is rejected before any mutation happens.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(s) {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return ApplicationStatus(s), nil
	}
	return "", fmt.Errorf("invalid application status: %q", s)
}

// Valid reports whether the status is one of the four known states.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

func (s ApplicationStatus) String() string {
	return string(s)
}
