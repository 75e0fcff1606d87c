// Package dashboard turns raw application and resume records into the
// derived metrics the dashboard displays. Compute is pure: same records,
// same clock day, same metrics, no side effects.
package dashboard

import (
	"math"
	"sort"
	"time"

	"github.com/jonathan/jobtrack/internal/types"
)

const (
	// weeklyDays is the span of the activity histogram.
	weeklyDays = 7
	// maxRecentApplications bounds the recent-application feed so the
	// view never receives unbounded data.
	maxRecentApplications = 5
	// intelligenceWindow is how many of the newest scored resumes feed
	// the intelligence score.
	intelligenceWindow = 3
)

// DayActivity is one bucket of the trailing-week histogram.
type DayActivity struct {
	Day   string // Mon..Sun label of the bucket's date
	Date  string // YYYY-MM-DD
	Count int
}

// Metrics is the full derived dashboard state. It is recomputed from
// scratch on every fetch, never mutated incrementally.
type Metrics struct {
	ResumeCount        int
	ApplicationCount   int
	InterviewCount     int
	IntelligenceScore  float64
	TopResumeScore     int
	SuccessRate        int
	StatusBreakdown    map[types.Status]int
	WeeklyActivity     []DayActivity
	RecentApplications []types.ApplicationRecord
}

// Compute derives dashboard metrics from raw records. now anchors the
// weekly histogram; input order is irrelevant except where ordering is
// itself the output (RecentApplications).
func Compute(apps []types.ApplicationRecord, resumes []types.ResumeRecord, now time.Time) Metrics {
	m := Metrics{
		ResumeCount:      len(resumes),
		ApplicationCount: len(apps),
		StatusBreakdown:  make(map[types.Status]int, len(types.AllStatuses())),
	}

	// All five statuses are always present, even at zero, so chart
	// rendering never sees a missing key.
	for _, s := range types.AllStatuses() {
		m.StatusBreakdown[s] = 0
	}
	for _, app := range apps {
		m.StatusBreakdown[app.Status]++
	}
	m.InterviewCount = m.StatusBreakdown[types.StatusInterviewing]

	if m.ApplicationCount > 0 {
		offers := m.StatusBreakdown[types.StatusOffer]
		m.SuccessRate = int(math.Round(100 * float64(offers) / float64(m.ApplicationCount)))
	}

	m.TopResumeScore = topResumeScore(resumes)
	m.IntelligenceScore = intelligenceScore(resumes)
	m.WeeklyActivity = weeklyActivity(apps, now)
	m.RecentApplications = recentApplications(apps)

	return m
}

func topResumeScore(resumes []types.ResumeRecord) int {
	top := 0
	for _, r := range resumes {
		if r.LastScore > top {
			top = r.LastScore
		}
	}
	return top
}

// intelligenceScore averages the newest scored resumes, rounded to one
// decimal. No resume uploaded means no basis for a score: hard zero.
func intelligenceScore(resumes []types.ResumeRecord) float64 {
	scored := make([]types.ResumeRecord, 0, len(resumes))
	for _, r := range resumes {
		if r.LastScore > 0 {
			scored = append(scored, r)
		}
	}
	if len(scored) == 0 {
		return 0
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].CreatedAt.After(scored[j].CreatedAt)
	})
	if len(scored) > intelligenceWindow {
		scored = scored[:intelligenceWindow]
	}

	sum := 0
	for _, r := range scored {
		sum += r.LastScore
	}
	mean := float64(sum) / float64(len(scored))
	return math.Round(mean*10) / 10
}

// weeklyActivity partitions applications by the calendar day of
// CreatedAt into exactly seven consecutive buckets ending on now's day,
// oldest first. Days with no activity report zero, not absence.
func weeklyActivity(apps []types.ApplicationRecord, now time.Time) []DayActivity {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	counts := make(map[string]int, weeklyDays)
	for _, app := range apps {
		created := app.CreatedAt.In(now.Location())
		counts[created.Format("2006-01-02")]++
	}

	activity := make([]DayActivity, 0, weeklyDays)
	for i := weeklyDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format("2006-01-02")
		activity = append(activity, DayActivity{
			Day:   day.Weekday().String()[:3],
			Date:  date,
			Count: counts[date],
		})
	}
	return activity
}

// recentApplications orders by CreatedAt descending (ID descending as a
// deterministic tie-break) and truncates to the feed bound.
func recentApplications(apps []types.ApplicationRecord) []types.ApplicationRecord {
	recent := make([]types.ApplicationRecord, len(apps))
	copy(recent, apps)
	sort.Slice(recent, func(i, j int) bool {
		if recent[i].CreatedAt.Equal(recent[j].CreatedAt) {
			return recent[i].ID > recent[j].ID
		}
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > maxRecentApplications {
		recent = recent[:maxRecentApplications]
	}
	return recent
}
