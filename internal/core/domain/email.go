package domain

import "time"

// EmailRecord is the audit row written for every notification, whether or
// not the external dispatch succeeds.
type EmailRecord struct {
	ID       int64     `json:"id"`
	ToEmail  string    `json:"to"`
	Subject  string    `json:"subject"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sent_at"`
	UserID   *int64    `json:"user_id,omitempty"`
	UserName string    `json:"user_name,omitempty"`
}
