package dto

import (
	"time"

	"usta_backend/internal/models"
)

type JobResponse struct {
	ID         string `json:"id"`
	OrderID    string `json:"order_id"`
	ProposalID string `json:"proposal_id"`
	AssigneeID string `json:"assignee_id"`
	CustomerID string `json:"customer_id,omitempty"`
	Price      int64  `json:"price"`

	Status models.JobStatus `json:"status"`

	PaymentConfirmedByCustomer models.PaymentConfirmation `json:"payment_confirmed_by_customer"`
	PaymentConfirmedByWorker   models.PaymentConfirmation `json:"payment_confirmed_by_worker"`

	ReviewWrittenByCustomer bool `json:"review_written_by_customer"`
	ReviewWrittenByWorker   bool `json:"review_written_by_worker"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewJobResponse(job *models.Job) *JobResponse {
	resp := &JobResponse{
		ID:                         job.ID,
		OrderID:                    job.OrderID,
		ProposalID:                 job.ProposalID,
		AssigneeID:                 job.AssigneeID,
		Price:                      job.Price,
		Status:                     job.Status,
		PaymentConfirmedByCustomer: job.PaymentConfirmedByCustomer,
		PaymentConfirmedByWorker:   job.PaymentConfirmedByWorker,
		ReviewWrittenByCustomer:    job.ReviewWrittenByCustomer,
		ReviewWrittenByWorker:      job.ReviewWrittenByWorker,
		CreatedAt:                  job.CreatedAt,
		UpdatedAt:                  job.UpdatedAt,
	}
	if job.Order != nil {
		resp.CustomerID = job.Order.OwnerID
	}
	return resp
}

type JobListRequest struct {
	OrderID  string `form:"order_id" validate:"omitempty,uuid"`
	Status   string `form:"status" validate:"omitempty,oneof=in_progress payment warning review completed"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type JobListResponse struct {
	Jobs       []*JobResponse `json:"jobs"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

type StatusChangeResponse struct {
	FromStatus models.JobStatus `json:"from_status"`
	ToStatus   models.JobStatus `json:"to_status"`
	ChangedAt  time.Time        `json:"changed_at"`
}

func NewStatusChangeResponse(change *models.JobStatusChange) *StatusChangeResponse {
	return &StatusChangeResponse{
		FromStatus: change.FromStatus,
		ToStatus:   change.ToStatus,
		ChangedAt:  change.ChangedAt,
	}
}
