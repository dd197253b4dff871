package dto

import (
	"time"

	"usta_backend/internal/models"
)

type CreateCvRequest struct {
	Image string `json:"image,omitempty" validate:"omitempty,max=255"`
	Bio   string `json:"bio,omitempty" validate:"omitempty,max=2000"`
}

type UpdateCvRequest struct {
	Image *string `json:"image,omitempty" validate:"omitempty,max=255"`
	Bio   *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
}

type CvResponse struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Image       string `json:"image,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Rating      int    `json:"rating"`
	ReviewCount int64  `json:"review_count"`
	AppealCount int64  `json:"appeal_count"`
}

func NewCvResponse(cv *models.Cv, reviewCount, appealCount int64) *CvResponse {
	return &CvResponse{
		ID:          cv.ID,
		OwnerID:     cv.OwnerID,
		Image:       cv.Image,
		Bio:         cv.Bio,
		Rating:      cv.Rating,
		ReviewCount: reviewCount,
		AppealCount: appealCount,
	}
}

type CreateBankCardRequest struct {
	HolderName string `json:"holder_name" validate:"required,max=255"`
	CardNumber int64  `json:"card_number" validate:"required,min=1000000000000000"`
}

type CreatePassportRequest struct {
	Series           string    `json:"series" validate:"required,len=2,alpha,uppercase"`
	Number           string    `json:"number" validate:"required,len=7,number"`
	DateOfIssue      time.Time `json:"date_of_issue" validate:"required"`
	IssuingAuthority string    `json:"issuing_authority" validate:"required,max=255"`
	Pinfl            string    `json:"pinfl,omitempty" validate:"omitempty,max=20"`
}
