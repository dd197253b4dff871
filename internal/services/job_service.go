package services

import (
	"errors"
	"time"

	"usta_backend/internal/models"
	"usta_backend/internal/repositories"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// JobService drives the job lifecycle:
//
//	in_progress -> payment -> (warning) -> review -> completed
//
// Every mutation locks the job row, so concurrent confirmations serialize and
// each one derives the next status from fresh state. Status writes append to
// the audit trail in the same transaction.
type JobService interface {
	GetJob(actorID string, isAdmin bool, id string) (*dto.JobResponse, error)
	ListJobs(actorID string, isAdmin bool, req *dto.JobListRequest) (*dto.JobListResponse, error)
	StatusHistory(actorID string, isAdmin bool, id string) ([]*dto.StatusChangeResponse, error)

	MarkWorkDone(actorID string, id string) (*dto.JobResponse, error)
	ConfirmPayment(actorID string, id string) (*dto.JobResponse, error)
	ReportPaymentProblem(actorID string, id string) (*dto.JobResponse, error)
}

type jobService struct {
	db      *gorm.DB
	txm     TxManager
	jobRepo repositories.JobRepository
}

func NewJobService(db *gorm.DB, txm TxManager, jobRepo repositories.JobRepository) JobService {
	return &jobService{db: db, txm: txm, jobRepo: jobRepo}
}

func (s *jobService) GetJob(actorID string, isAdmin bool, id string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NotFound("job", "job not found")
		}
		return nil, err
	}
	if !isAdmin && !job.IsParty(actorID) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return dto.NewJobResponse(job), nil
}

func (s *jobService) ListJobs(actorID string, isAdmin bool, req *dto.JobListRequest) (*dto.JobListResponse, error) {
	filter := repositories.JobFilter{
		OrderID: req.OrderID,
		Status:  models.JobStatus(req.Status),
	}
	if !isAdmin {
		filter.PartyID = actorID
	}
	filter.Page, filter.PageSize = normalizePagination(req.Page, req.PageSize)

	jobs, total, err := s.jobRepo.FindAll(s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.JobListResponse{
		Jobs:       make([]*dto.JobResponse, 0, len(jobs)),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	}
	for i := range jobs {
		resp.Jobs = append(resp.Jobs, dto.NewJobResponse(&jobs[i]))
	}
	return resp, nil
}

func (s *jobService) StatusHistory(actorID string, isAdmin bool, id string) ([]*dto.StatusChangeResponse, error) {
	job, err := s.jobRepo.FindByID(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NotFound("job", "job not found")
		}
		return nil, err
	}
	if !isAdmin && !job.IsParty(actorID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	history, err := s.jobRepo.StatusHistory(s.db, id)
	if err != nil {
		return nil, err
	}
	resp := make([]*dto.StatusChangeResponse, 0, len(history))
	for i := range history {
		resp = append(resp, dto.NewStatusChangeResponse(&history[i]))
	}
	return resp, nil
}

// MarkWorkDone moves the job from in_progress to payment. Either party may
// declare the work finished.
func (s *jobService) MarkWorkDone(actorID string, id string) (*dto.JobResponse, error) {
	var job *models.Job
	err := s.txm.Transaction(func(tx *gorm.DB) error {
		var err error
		job, err = s.lockJobForParty(tx, id, actorID)
		if err != nil {
			return err
		}
		if job.Status != models.JobStatusInProgress {
			return apperrors.InvalidState("job", "work can only be finished while the job is in progress")
		}
		if err := transition(s.jobRepo, tx, job, models.JobStatusPayment); err != nil {
			return err
		}
		return s.jobRepo.Update(tx, job)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewJobResponse(job), nil
}

func (s *jobService) ConfirmPayment(actorID string, id string) (*dto.JobResponse, error) {
	return s.setConfirmation(actorID, id, models.PaymentApproved)
}

func (s *jobService) ReportPaymentProblem(actorID string, id string) (*dto.JobResponse, error) {
	return s.setConfirmation(actorID, id, models.PaymentProblem)
}

func (s *jobService) setConfirmation(actorID, id string, value models.PaymentConfirmation) (*dto.JobResponse, error) {
	var job *models.Job
	err := s.txm.Transaction(func(tx *gorm.DB) error {
		var err error
		job, err = s.lockJobForParty(tx, id, actorID)
		if err != nil {
			return err
		}
		if job.Status != models.JobStatusPayment && job.Status != models.JobStatusWarning {
			return apperrors.InvalidState("job", "payment can only be confirmed during the payment stage")
		}

		if job.IsCustomer(actorID) {
			job.PaymentConfirmedByCustomer = value
		} else {
			job.PaymentConfirmedByWorker = value
		}

		if err := s.derivePaymentStatus(tx, job); err != nil {
			return err
		}
		return s.jobRepo.Update(tx, job)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewJobResponse(job), nil
}

// derivePaymentStatus re-evaluates the payment stage after a confirmation
// changed. Mutual approval wins over a stale problem report: once both sides
// approve, the job advances to review even out of warning.
func (s *jobService) derivePaymentStatus(tx *gorm.DB, job *models.Job) error {
	bothApproved := job.PaymentConfirmedByCustomer == models.PaymentApproved &&
		job.PaymentConfirmedByWorker == models.PaymentApproved
	anyProblem := job.PaymentConfirmedByCustomer == models.PaymentProblem ||
		job.PaymentConfirmedByWorker == models.PaymentProblem

	switch {
	case bothApproved:
		return transition(s.jobRepo, tx, job, models.JobStatusReview)
	case anyProblem && job.Status == models.JobStatusPayment:
		return transition(s.jobRepo, tx, job, models.JobStatusWarning)
	}
	return nil
}

func (s *jobService) lockJobForParty(tx *gorm.DB, id, actorID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByIDForUpdate(tx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NotFound("job", "job not found")
		}
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ReferenceError("job", "order no longer exists")
		}
		return nil, err
	}
	if !job.IsParty(actorID) {
		return nil, apperrors.PermissionDenied("job", "only the customer or the worker can act on this job")
	}
	return job, nil
}

// transition writes the status change and its audit row. A no-op when the
// job is already in the target status.
func transition(repo repositories.JobRepository, tx *gorm.DB, job *models.Job, to models.JobStatus) error {
	if job.Status == to {
		return nil
	}
	change := &models.JobStatusChange{
		JobID:      job.ID,
		FromStatus: job.Status,
		ToStatus:   to,
		ChangedAt:  time.Now(),
	}
	job.Status = to
	return repo.AppendStatusChange(tx, change)
}
