package domain

import "time"

// ApplicationStatus is the lifecycle stage of a job application.
type ApplicationStatus string

const (
	StatusPending             ApplicationStatus = "pending"
	StatusApplicationReceived ApplicationStatus = "application_received"
	StatusUnderReview         ApplicationStatus = "under_review"
	StatusInterview           ApplicationStatus = "interview"
	StatusSelected            ApplicationStatus = "selected"
	StatusRejected            ApplicationStatus = "rejected"
)

// validStatuses is the closed set an admin may assign. The set is
// deliberately unordered: any status may be overwritten with any other,
// so the console can correct mistakes without a reset path.
var validStatuses = map[ApplicationStatus]struct{}{
	StatusPending:             {},
	StatusApplicationReceived: {},
	StatusUnderReview:         {},
	StatusInterview:           {},
	StatusSelected:            {},
	StatusRejected:            {},
}

// IsValid reports whether s is a member of the closed status set.
func (s ApplicationStatus) IsValid() bool {
	_, ok := validStatuses[s]
	return ok
}

// Application is a candidate's submission for a position.
type Application struct {
	ID         int64             `json:"id"`
	Position   string            `json:"position"`
	FullName   string            `json:"fullName"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	College    string            `json:"college"`
	Degree     string            `json:"degree"`
	Semester   string            `json:"semester"`
	Year       string            `json:"year"`
	About      string            `json:"about"`
	ResumeName string            `json:"resumeName"`
	LinkedIn   string            `json:"linkedin,omitempty"`
	GitHub     string            `json:"github,omitempty"`
	Status     ApplicationStatus `json:"status"`
	AppliedAt  time.Time         `json:"appliedAt"`
}
