package models

type UserRole string
type OrderStatus string
type ProposalStatus string
type JobStatus string
type PaymentConfirmation string
type AppealType string

const (
	UserRoleAdmin    UserRole = "Admin"
	UserRoleCustomer UserRole = "Customer"
	UserRoleWorker   UserRole = "Worker"

	OrderStatusOpen   OrderStatus = "open"
	OrderStatusClosed OrderStatus = "closed"

	ProposalStatusWaiting  ProposalStatus = "waiting"
	ProposalStatusOffered  ProposalStatus = "offered"
	ProposalStatusApproved ProposalStatus = "approved"
	ProposalStatusRejected ProposalStatus = "rejected"
	ProposalStatusCanceled ProposalStatus = "canceled"

	JobStatusInProgress JobStatus = "in_progress"
	JobStatusPayment    JobStatus = "payment"
	JobStatusWarning    JobStatus = "warning"
	JobStatusReview     JobStatus = "review"
	JobStatusCompleted  JobStatus = "completed"

	PaymentDefault  PaymentConfirmation = "default"
	PaymentApproved PaymentConfirmation = "approved"
	PaymentProblem  PaymentConfirmation = "problem"

	AppealTypePayment AppealType = "Payment"
	AppealTypeJob     AppealType = "Job"
)

// ValidRole reports whether r belongs to the closed role enumeration.
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleAdmin, UserRoleCustomer, UserRoleWorker:
		return true
	}
	return false
}

// ValidAppealType reports whether t belongs to the closed appeal category set.
func ValidAppealType(t AppealType) bool {
	return t == AppealTypePayment || t == AppealTypeJob
}

const (
	RatingMin = 1
	RatingMax = 5
)
