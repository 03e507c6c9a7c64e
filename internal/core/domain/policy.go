package domain

// Actor is the authenticated identity a policy decision is made for.
type Actor struct {
	ID   uint
	Role Role
}

// The policy functions below are pure: they look only at the actor, the
// action and the resource ownership passed in, and report allow/deny.
// Callers translate a deny into a 403, never into a hard failure.

// CanPostJob reports whether the actor may create job postings.
func CanPostJob(a Actor) bool {
	switch a.Role {
	case RoleEmployer, RoleAdmin:
		return true
	case RoleJobSeeker:
		return false
	}
	return false
}

// CanManageJob reports whether the actor may edit or delete the job owned by
// employerID. Admins manage every job, employers only their own.
func CanManageJob(a Actor, employerID uint) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleEmployer:
		return a.ID == employerID
	case RoleJobSeeker:
		return false
	}
	return false
}

// CanViewJobApplications reports whether the actor may list the applications
// submitted to the job owned by employerID.
func CanViewJobApplications(a Actor, employerID uint) bool {
	return CanManageJob(a, employerID)
}

// CanUpdateApplicationStatus reports whether the actor may change the status
// of an application to the job owned by employerID.
func CanUpdateApplicationStatus(a Actor, employerID uint) bool {
	return CanManageJob(a, employerID)
}

// CanApply reports whether the actor may submit applications at all.
// The one-application-per-job rule is enforced separately by the ledger.
func CanApply(a Actor) bool {
	switch a.Role {
	case RoleJobSeeker:
		return true
	case RoleEmployer, RoleAdmin:
		return false
	}
	return false
}

// CanListOwnJobs reports whether the actor has a job-postings listing.
func CanListOwnJobs(a Actor) bool {
	return CanPostJob(a)
}

// CanListOwnApplications reports whether the actor has an applications listing.
func CanListOwnApplications(a Actor) bool {
	return CanApply(a)
}

// CanAccessAdminPanel reports whether the actor may use the admin surface.
func CanAccessAdminPanel(a Actor) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleJobSeeker, RoleEmployer:
		return false
	}
	return false
}

// CanToggleUserStatus reports whether the actor may flip the active flag of
// the user targetID. Self-deactivation is always denied, even for admins.
func CanToggleUserStatus(a Actor, targetID uint) bool {
	if a.ID == targetID {
		return false
	}
	return CanAccessAdminPanel(a)
}

// CanToggleJobStatus reports whether the actor may flip a job's active flag.
func CanToggleJobStatus(a Actor) bool {
	return CanAccessAdminPanel(a)
}
