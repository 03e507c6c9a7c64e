package domain

import "testing"

func TestParseRole(t *testing.T) {
	for _, s := range []string{"job_seeker", "employer", "admin"} {
		role, err := ParseRole(s)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", s, err)
		}
		if role.String() != s {
			t.Fatalf("ParseRole(%q) = %q", s, role)
		}
	}

	for _, s := range []string{"", "Admin", "JOB_SEEKER", "moderator"} {
		if _, err := ParseRole(s); err == nil {
			t.Fatalf("ParseRole(%q) should fail", s)
		}
	}
}

func TestRoleRegistrable(t *testing.T) {
	if !RoleJobSeeker.Registrable() || !RoleEmployer.Registrable() {
		t.Fatal("job_seeker and employer must be registrable")
	}
	if RoleAdmin.Registrable() {
		t.Fatal("admin must not be registrable")
	}
}

func TestParseApplicationStatus(t *testing.T) {
	for _, s := range []string{"pending", "reviewed", "accepted", "rejected"} {
		status, err := ParseApplicationStatus(s)
		if err != nil {
			t.Fatalf("ParseApplicationStatus(%q) returned error: %v", s, err)
		}
		if !status.Valid() {
			t.Fatalf("status %q should be valid", s)
		}
	}

	if _, err := ParseApplicationStatus("approved"); err == nil {
		t.Fatal("ParseApplicationStatus should reject unknown values")
	}
}

func TestParseCategoryAndJobType(t *testing.T) {
	if len(Categories) != 10 {
		t.Fatalf("expected 10 categories, got %d", len(Categories))
	}
	for _, c := range Categories {
		if _, err := ParseCategory(c.String()); err != nil {
			t.Fatalf("category %q should round-trip: %v", c, err)
		}
	}
	if _, err := ParseCategory("gardening"); err == nil {
		t.Fatal("ParseCategory should reject unknown values")
	}

	if len(JobTypes) != 4 {
		t.Fatalf("expected 4 job types, got %d", len(JobTypes))
	}
	for _, jt := range JobTypes {
		if _, err := ParseJobType(jt.String()); err != nil {
			t.Fatalf("job type %q should round-trip: %v", jt, err)
		}
	}
	if _, err := ParseJobType("freelance"); err == nil {
		t.Fatal("ParseJobType should reject unknown values")
	}
}
