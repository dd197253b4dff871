package services

import (
	"errors"
	"math"

	"usta_backend/internal/models"
	"usta_backend/internal/repositories"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	// SubmitReview stores a party's review of the counterparty, advances the
	// job to completed once both sides have written theirs, and recomputes
	// the recipient's rating in the same transaction.
	SubmitReview(actorID string, req *dto.SubmitReviewRequest) (*dto.ReviewResponse, error)
	GetReview(id string) (*dto.ReviewResponse, error)
	ListReviews(req *dto.ReviewListRequest) (*dto.ReviewListResponse, error)
	RatingSummary(cvID string) (*dto.RatingSummaryResponse, error)
}

type reviewService struct {
	db          *gorm.DB
	txm         TxManager
	reviewRepo  repositories.ReviewRepository
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
}

func NewReviewService(
	db *gorm.DB,
	txm TxManager,
	reviewRepo repositories.ReviewRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
) ReviewService {
	return &reviewService{
		db:          db,
		txm:         txm,
		reviewRepo:  reviewRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
	}
}

func (s *reviewService) SubmitReview(actorID string, req *dto.SubmitReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < models.RatingMin || req.Rating > models.RatingMax {
		return nil, apperrors.ValidationFailed("review", "rating must be between 1 and 5")
	}

	var review *models.Review
	var jobStatus models.JobStatus
	err := s.txm.Transaction(func(tx *gorm.DB) error {
		job, err := s.jobRepo.FindByIDForUpdate(tx, req.JobID)
		if err != nil {
			if errors.Is(err, repositories.ErrJobNotFound) {
				return apperrors.NotFound("review", "job not found")
			}
			if errors.Is(err, repositories.ErrOrderNotFound) {
				return apperrors.ReferenceError("review", "order no longer exists")
			}
			return err
		}
		if !job.IsParty(actorID) {
			return apperrors.PermissionDenied("review", "only the customer or the worker can review this job")
		}
		if job.Status != models.JobStatusReview {
			return apperrors.InvalidState("review", "reviews are only accepted during the review stage")
		}

		counterpartyID := job.Order.OwnerID
		if job.IsCustomer(actorID) {
			counterpartyID = job.AssigneeID
		}
		cv, err := s.profileRepo.FindCvByOwner(tx, counterpartyID)
		if err != nil {
			if errors.Is(err, repositories.ErrCvNotFound) {
				return apperrors.ValidationFailed("review", "the counterparty has no profile to review")
			}
			return err
		}

		review = &models.Review{
			JobID:   job.ID,
			OwnerID: actorID,
			WhomID:  cv.ID,
			Rating:  req.Rating,
			Comment: req.Comment,
		}
		if err := s.reviewRepo.Create(tx, review); err != nil {
			if errors.Is(err, repositories.ErrReviewAlreadyExists) {
				return apperrors.Conflict("review", "you have already reviewed this job")
			}
			return err
		}

		if job.IsCustomer(actorID) {
			job.ReviewWrittenByCustomer = true
		} else {
			job.ReviewWrittenByWorker = true
		}
		if job.ReviewWrittenByCustomer && job.ReviewWrittenByWorker {
			if err := transition(s.jobRepo, tx, job, models.JobStatusCompleted); err != nil {
				return err
			}
		}
		if err := s.jobRepo.Update(tx, job); err != nil {
			return err
		}
		jobStatus = job.Status

		return s.recomputeRating(tx, cv.ID)
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewReviewResponse(review)
	resp.JobStatus = jobStatus
	return resp, nil
}

// recomputeRating snaps the mean of all review ratings for the profile to the
// nearest whole level, rounding the midpoint up. A profile without reviews
// keeps the floor rating of 1.
func (s *reviewService) recomputeRating(tx *gorm.DB, cvID string) error {
	avg, count, err := s.reviewRepo.AverageRatingForCv(tx, cvID)
	if err != nil {
		return err
	}

	rating := models.RatingMin
	if count > 0 {
		rating = int(math.Round(avg))
		if rating < models.RatingMin {
			rating = models.RatingMin
		}
		if rating > models.RatingMax {
			rating = models.RatingMax
		}
	}
	return s.profileRepo.UpdateCvRating(tx, cvID, rating)
}

func (s *reviewService) GetReview(id string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.NotFound("review", "review not found")
		}
		return nil, err
	}
	return dto.NewReviewResponse(review), nil
}

func (s *reviewService) ListReviews(req *dto.ReviewListRequest) (*dto.ReviewListResponse, error) {
	filter := repositories.ReviewFilter{
		JobID:  req.JobID,
		WhomID: req.WhomID,
		Rating: req.Rating,
	}
	filter.Page, filter.PageSize = normalizePagination(req.Page, req.PageSize)

	reviews, total, err := s.reviewRepo.FindAll(s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReviewListResponse{
		Reviews:    make([]*dto.ReviewResponse, 0, len(reviews)),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	}
	for i := range reviews {
		resp.Reviews = append(resp.Reviews, dto.NewReviewResponse(&reviews[i]))
	}
	return resp, nil
}

func (s *reviewService) RatingSummary(cvID string) (*dto.RatingSummaryResponse, error) {
	cv, err := s.profileRepo.FindCvByID(s.db, cvID)
	if err != nil {
		if errors.Is(err, repositories.ErrCvNotFound) {
			return nil, apperrors.NotFound("review", "cv not found")
		}
		return nil, err
	}
	reviews, err := s.profileRepo.CountCvReviews(s.db, cvID)
	if err != nil {
		return nil, err
	}
	appeals, err := s.profileRepo.CountCvAppeals(s.db, cvID)
	if err != nil {
		return nil, err
	}
	return &dto.RatingSummaryResponse{
		CvID:        cv.ID,
		Rating:      cv.Rating,
		ReviewCount: reviews,
		AppealCount: appeals,
	}, nil
}
