package services

import (
	"errors"

	"usta_backend/internal/models"
	"usta_backend/internal/repositories"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AppealService interface {
	// FileAppeal records a grievance against the counterparty and forces the
	// job into warning.
	FileAppeal(actorID string, req *dto.FileAppealRequest) (*dto.AppealResponse, error)
	GetAppeal(actorID string, isAdmin bool, id string) (*dto.AppealResponse, error)
	ListAppeals(actorID string, isAdmin bool, req *dto.AppealListRequest) (*dto.AppealListResponse, error)
}

type appealService struct {
	db          *gorm.DB
	txm         TxManager
	appealRepo  repositories.AppealRepository
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
}

func NewAppealService(
	db *gorm.DB,
	txm TxManager,
	appealRepo repositories.AppealRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
) AppealService {
	return &appealService{
		db:          db,
		txm:         txm,
		appealRepo:  appealRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
	}
}

func (s *appealService) FileAppeal(actorID string, req *dto.FileAppealRequest) (*dto.AppealResponse, error) {
	appealType := models.AppealType(req.To)
	if !models.ValidAppealType(appealType) {
		return nil, apperrors.ValidationFailed("appeal", "appeal category must be Payment or Job")
	}

	var appeal *models.Appeal
	var jobStatus models.JobStatus
	err := s.txm.Transaction(func(tx *gorm.DB) error {
		job, err := s.jobRepo.FindByIDForUpdate(tx, req.JobID)
		if err != nil {
			if errors.Is(err, repositories.ErrJobNotFound) {
				return apperrors.NotFound("appeal", "job not found")
			}
			if errors.Is(err, repositories.ErrOrderNotFound) {
				return apperrors.ReferenceError("appeal", "order no longer exists")
			}
			return err
		}
		if !job.IsParty(actorID) {
			return apperrors.PermissionDenied("appeal", "only the customer or the worker can appeal this job")
		}
		if job.Status == models.JobStatusReview || job.Status == models.JobStatusCompleted {
			return apperrors.InvalidState("appeal", "the job has already passed the payment stage")
		}

		counterpartyID := job.Order.OwnerID
		if job.IsCustomer(actorID) {
			counterpartyID = job.AssigneeID
		}
		cv, err := s.profileRepo.FindCvByOwner(tx, counterpartyID)
		if err != nil {
			if errors.Is(err, repositories.ErrCvNotFound) {
				return apperrors.ValidationFailed("appeal", "the counterparty has no profile to appeal against")
			}
			return err
		}

		appeal = &models.Appeal{
			JobID:   job.ID,
			OwnerID: actorID,
			WhomID:  cv.ID,
			Problem: req.Problem,
			To:      appealType,
		}
		if err := s.appealRepo.Create(tx, appeal); err != nil {
			return err
		}

		if err := transition(s.jobRepo, tx, job, models.JobStatusWarning); err != nil {
			return err
		}
		if err := s.jobRepo.Update(tx, job); err != nil {
			return err
		}
		jobStatus = job.Status
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := dto.NewAppealResponse(appeal)
	resp.JobStatus = jobStatus
	return resp, nil
}

func (s *appealService) GetAppeal(actorID string, isAdmin bool, id string) (*dto.AppealResponse, error) {
	appeal, err := s.appealRepo.FindByID(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAppealNotFound) {
			return nil, apperrors.NotFound("appeal", "appeal not found")
		}
		return nil, err
	}

	if !isAdmin && appeal.OwnerID != actorID {
		cv, err := s.profileRepo.FindCvByID(s.db, appeal.WhomID)
		if err != nil {
			return nil, err
		}
		if cv.OwnerID != actorID {
			return nil, apperrors.ErrInsufficientPermissions
		}
	}
	return dto.NewAppealResponse(appeal), nil
}

func (s *appealService) ListAppeals(actorID string, isAdmin bool, req *dto.AppealListRequest) (*dto.AppealListResponse, error) {
	filter := repositories.AppealFilter{
		JobID: req.JobID,
		To:    models.AppealType(req.To),
	}
	if !isAdmin {
		filter.PartyID = actorID
	}
	filter.Page, filter.PageSize = normalizePagination(req.Page, req.PageSize)

	appeals, total, err := s.appealRepo.FindAll(s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.AppealListResponse{
		Appeals:    make([]*dto.AppealResponse, 0, len(appeals)),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	}
	for i := range appeals {
		resp.Appeals = append(resp.Appeals, dto.NewAppealResponse(&appeals[i]))
	}
	return resp, nil
}
