package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Status is the lifecycle label of a tracked job application. The set is
// closed: any value outside the five constants is a data error, not a new
// state.
type Status string

// The five application statuses, in their fixed display order.
const (
	StatusWishlist     Status = "WISHLIST"
	StatusApplied      Status = "APPLIED"
	StatusInterviewing Status = "INTERVIEWING"
	StatusOffer        Status = "OFFER"
	StatusRejected     Status = "REJECTED"
)

// AllStatuses returns the statuses in their fixed enumeration order.
// Chart rendering depends on this order being stable.
func AllStatuses() []Status {
	return []Status{StatusWishlist, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected}
}

// ParseStatus converts a raw string into a Status, rejecting anything
// outside the closed enumeration.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case StatusWishlist, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected:
		return status, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// UnmarshalJSON enforces the closed enumeration at decode time.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Date is a calendar date carried as "2006-01-02" on the wire.
type Date struct {
	time.Time
}

// UnmarshalJSON parses a JSON string in "2006-01-02" form.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", raw, err)
	}
	d.Time = t
	return nil
}

// MarshalJSON emits the date in "2006-01-02" form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format("2006-01-02"))
}

// ApplicationRecord is a read-only copy of a tracked job application
// fetched from the server. Records are owned by the backend store.
type ApplicationRecord struct {
	ID         int       `json:"id"`
	Company    string    `json:"company"`
	JobTitle   string    `json:"job_title"`
	Status     Status    `json:"status"`
	MatchScore *int      `json:"match_score,omitempty"`
	AppliedAt  *Date     `json:"applied_at,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ResumeRecord is a read-only copy of an uploaded resume and its latest
// analysis score.
type ResumeRecord struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	LastScore int       `json:"last_score"`
	CreatedAt time.Time `json:"created_at"`
}
