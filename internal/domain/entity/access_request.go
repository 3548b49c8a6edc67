package entity

import "time"

// AccessRequestStatus is the lifecycle state of a public signup submission.
type AccessRequestStatus string

const (
	AccessRequestPending  AccessRequestStatus = "PENDING"
	AccessRequestApproved AccessRequestStatus = "APPROVED"
	AccessRequestRejected AccessRequestStatus = "REJECTED"
)

// IsValid checks if the AccessRequestStatus is a valid value.
func (s AccessRequestStatus) IsValid() bool {
	switch s {
	case AccessRequestPending, AccessRequestApproved, AccessRequestRejected:
		return true
	default:
		return false
	}
}

// AccessRequest is a public signup submission awaiting provisioning into a tenant.
// Only the provisioning workflow and administrators mutate it after creation.
type AccessRequest struct {
	ID                string
	FullName          string
	Email             string
	BusinessName      string
	WhatsApp          string
	Plan              Plan
	Status            AccessRequestStatus
	Language          string
	RejectionReason   string
	CreatedAt         time.Time
	ProcessedAt       *time.Time
	LastPasswordReset *time.Time
}

// IsPending reports whether the request can still transition.
func (r *AccessRequest) IsPending() bool {
	return r.Status == AccessRequestPending
}

// Approve moves the request to APPROVED.
func (r *AccessRequest) Approve(at time.Time) {
	r.Status = AccessRequestApproved
	r.ProcessedAt = &at
}

// Reject moves the request to REJECTED with a reason.
func (r *AccessRequest) Reject(at time.Time, reason string) {
	r.Status = AccessRequestRejected
	r.RejectionReason = reason
	r.ProcessedAt = &at
}
