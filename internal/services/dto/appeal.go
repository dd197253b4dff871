package dto

import (
	"time"

	"usta_backend/internal/models"
)

type FileAppealRequest struct {
	JobID   string `json:"job_id" validate:"required,uuid"`
	To      string `json:"to" validate:"required,oneof=Payment Job"`
	Problem string `json:"problem" validate:"required,max=5000"`
}

type AppealResponse struct {
	ID        string            `json:"id"`
	JobID     string            `json:"job_id"`
	OwnerID   string            `json:"owner_id"`
	WhomID    string            `json:"whom_id"`
	Problem   string            `json:"problem"`
	To        models.AppealType `json:"to"`
	JobStatus models.JobStatus  `json:"job_status,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewAppealResponse(appeal *models.Appeal) *AppealResponse {
	return &AppealResponse{
		ID:        appeal.ID,
		JobID:     appeal.JobID,
		OwnerID:   appeal.OwnerID,
		WhomID:    appeal.WhomID,
		Problem:   appeal.Problem,
		To:        appeal.To,
		CreatedAt: appeal.CreatedAt,
	}
}

type AppealListRequest struct {
	JobID    string `form:"job_id" validate:"omitempty,uuid"`
	To       string `form:"to" validate:"omitempty,oneof=Payment Job"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type AppealListResponse struct {
	Appeals    []*AppealResponse `json:"appeals"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}
