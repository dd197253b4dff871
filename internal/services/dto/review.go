package dto

import (
	"time"

	"usta_backend/internal/models"
)

type SubmitReviewRequest struct {
	JobID   string `json:"job_id" validate:"required,uuid"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

type ReviewResponse struct {
	ID        string           `json:"id"`
	JobID     string           `json:"job_id"`
	OwnerID   string           `json:"owner_id"`
	WhomID    string           `json:"whom_id"`
	Rating    int              `json:"rating"`
	Comment   string           `json:"comment,omitempty"`
	JobStatus models.JobStatus `json:"job_status,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        review.ID,
		JobID:     review.JobID,
		OwnerID:   review.OwnerID,
		WhomID:    review.WhomID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

type ReviewListRequest struct {
	JobID    string `form:"job_id" validate:"omitempty,uuid"`
	WhomID   string `form:"whom_id" validate:"omitempty,uuid"`
	Rating   int    `form:"rating" validate:"omitempty,min=1,max=5"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ReviewListResponse struct {
	Reviews    []*ReviewResponse `json:"reviews"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

type RatingSummaryResponse struct {
	CvID        string `json:"cv_id"`
	Rating      int    `json:"rating"`
	ReviewCount int64  `json:"review_count"`
	AppealCount int64  `json:"appeal_count"`
}
