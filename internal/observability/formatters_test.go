package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobtrack/internal/dashboard"
	"github.com/jonathan/jobtrack/internal/types"
)

var now = time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

func TestPrintDashboard(t *testing.T) {
	score := 82
	apps := []types.ApplicationRecord{
		{ID: 1, Company: "Acme", JobTitle: "Engineer", Status: types.StatusOffer, MatchScore: &score, CreatedAt: now},
		{ID: 2, Company: "Initech", JobTitle: "SRE", Status: types.StatusApplied, CreatedAt: now.AddDate(0, 0, -1)},
	}
	resumes := []types.ResumeRecord{{ID: 1, Title: "Backend 2026", LastScore: 90, CreatedAt: now}}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintDashboard(dashboard.Compute(apps, resumes, now))

	out := buf.String()
	assert.Contains(t, out, "Command Center")
	assert.Contains(t, out, "Intelligence Score:  90.0/100")
	assert.Contains(t, out, "Success Rate:        50%")
	assert.Contains(t, out, "Weekly Activity")
	assert.Contains(t, out, "2 application(s) this week")
	assert.Contains(t, out, "Acme")
	// The unscored application renders a dash, not a zero.
	assert.Contains(t, out, "—")
}

func TestPrintDashboard_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDashboard(dashboard.Compute(nil, nil, now))

	out := buf.String()
	assert.Contains(t, out, "No applications tracked yet.")
	assert.Contains(t, out, "Intelligence Score:  0.0/100")
}

func TestPrintApplications_AbsentOptionals(t *testing.T) {
	apps := []types.ApplicationRecord{
		{ID: 1, Company: "Acme", JobTitle: "Engineer", Status: types.StatusWishlist, CreatedAt: now},
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintApplications(apps)

	out := buf.String()
	assert.Contains(t, out, "Applications (1)")
	assert.Contains(t, out, "WISHLIST")
	assert.Contains(t, out, "—")
}

func TestPrintResumes_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResumes(nil)
	assert.Contains(t, buf.String(), "No resumes uploaded yet.")
}

func TestPrintSession(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSession(types.Identity{ID: 7, Username: "operative", Email: "op@example.com"}, "2026-09-02T00:00:00Z")

	out := buf.String()
	assert.Contains(t, out, "operative (#7)")
	assert.Contains(t, out, "op@example.com")
	assert.Contains(t, out, "expires 2026-09-02T00:00:00Z")
}
