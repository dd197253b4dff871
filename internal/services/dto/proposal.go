package dto

import (
	"time"

	"usta_backend/internal/models"
)

type CreateProposalRequest struct {
	OrderID string `json:"order_id" validate:"required,uuid"`
	Message string `json:"message" validate:"required,max=5000"`
	Price   int64  `json:"price" validate:"required,min=0"`
}

type UpdateProposalStatusRequest struct {
	Status models.ProposalStatus `json:"status" validate:"required,oneof=waiting offered approved rejected canceled"`
}

type ProposalResponse struct {
	ID        string                `json:"id"`
	OwnerID   string                `json:"owner_id"`
	OrderID   string                `json:"order_id"`
	Message   string                `json:"message"`
	Price     int64                 `json:"price"`
	Status    models.ProposalStatus `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
	// JobID is set when approving the proposal produced (or found) a job.
	JobID string `json:"job_id,omitempty"`
}

func NewProposalResponse(proposal *models.Proposal) *ProposalResponse {
	return &ProposalResponse{
		ID:        proposal.ID,
		OwnerID:   proposal.OwnerID,
		OrderID:   proposal.OrderID,
		Message:   proposal.Message,
		Price:     proposal.Price,
		Status:    proposal.Status,
		CreatedAt: proposal.CreatedAt,
	}
}

type ProposalListRequest struct {
	OrderID  string `form:"order_id" validate:"omitempty,uuid"`
	Status   string `form:"status" validate:"omitempty,oneof=waiting offered approved rejected canceled"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ProposalListResponse struct {
	Proposals  []*ProposalResponse `json:"proposals"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}
