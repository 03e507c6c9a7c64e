package domain

import "testing"

var (
	seeker   = Actor{ID: 1, Role: RoleJobSeeker}
	employer = Actor{ID: 2, Role: RoleEmployer}
	admin    = Actor{ID: 3, Role: RoleAdmin}
)

func TestCanPostJob(t *testing.T) {
	cases := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"seeker denied", seeker, false},
		{"employer allowed", employer, true},
		{"admin allowed", admin, true},
		{"unknown role denied", Actor{ID: 9, Role: "superuser"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanPostJob(tc.actor); got != tc.want {
				t.Fatalf("CanPostJob(%v) = %t, want %t", tc.actor, got, tc.want)
			}
		})
	}
}

func TestCanManageJob(t *testing.T) {
	const ownerID = 2

	cases := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"owning employer allowed", employer, true},
		{"other employer denied", Actor{ID: 7, Role: RoleEmployer}, false},
		{"admin allowed on any job", admin, true},
		{"seeker denied", seeker, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanManageJob(tc.actor, ownerID); got != tc.want {
				t.Fatalf("CanManageJob(%v, %d) = %t, want %t", tc.actor, ownerID, got, tc.want)
			}
		})
	}
}

func TestCanViewJobApplicationsMatchesManage(t *testing.T) {
	actors := []Actor{seeker, employer, admin, {ID: 7, Role: RoleEmployer}}
	for _, a := range actors {
		if CanViewJobApplications(a, 2) != CanManageJob(a, 2) {
			t.Fatalf("view/manage policies diverged for %v", a)
		}
		if CanUpdateApplicationStatus(a, 2) != CanManageJob(a, 2) {
			t.Fatalf("review/manage policies diverged for %v", a)
		}
	}
}

func TestCanApply(t *testing.T) {
	if !CanApply(seeker) {
		t.Fatal("seeker should be able to apply")
	}
	if CanApply(employer) {
		t.Fatal("employer must not apply")
	}
	if CanApply(admin) {
		t.Fatal("admin must not apply")
	}
}

func TestCanToggleUserStatus(t *testing.T) {
	cases := []struct {
		name   string
		actor  Actor
		target uint
		want   bool
	}{
		{"admin toggles other user", admin, 1, true},
		{"admin toggles self denied", admin, admin.ID, false},
		{"employer denied", employer, 1, false},
		{"seeker denied", seeker, 2, false},
		{"seeker toggling self still denied", seeker, seeker.ID, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanToggleUserStatus(tc.actor, tc.target); got != tc.want {
				t.Fatalf("CanToggleUserStatus(%v, %d) = %t, want %t", tc.actor, tc.target, got, tc.want)
			}
		})
	}
}

func TestAdminOnlyPolicies(t *testing.T) {
	for _, a := range []Actor{seeker, employer} {
		if CanAccessAdminPanel(a) {
			t.Fatalf("%s must not access admin panel", a.Role)
		}
		if CanToggleJobStatus(a) {
			t.Fatalf("%s must not toggle job status", a.Role)
		}
	}
	if !CanAccessAdminPanel(admin) || !CanToggleJobStatus(admin) {
		t.Fatal("admin should pass the admin-only policies")
	}
}

func TestOwnListingPolicies(t *testing.T) {
	if !CanListOwnJobs(employer) || CanListOwnJobs(seeker) {
		t.Fatal("own-jobs listing should mirror posting rights")
	}
	if !CanListOwnApplications(seeker) || CanListOwnApplications(employer) {
		t.Fatal("own-applications listing should mirror apply rights")
	}
}
