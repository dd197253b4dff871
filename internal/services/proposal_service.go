package services

import (
	"errors"

	"usta_backend/internal/models"
	"usta_backend/internal/repositories"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProposalService interface {
	CreateProposal(actorID string, req *dto.CreateProposalRequest) (*dto.ProposalResponse, error)
	GetProposal(actorID string, isAdmin bool, id string) (*dto.ProposalResponse, error)
	ListProposals(actorID string, isAdmin bool, req *dto.ProposalListRequest) (*dto.ProposalListResponse, error)
	// UpdateStatus resolves a proposal. Approving an eligible proposal closes
	// the order and creates the job; the operation is idempotent with respect
	// to job creation.
	UpdateStatus(actorID string, id string, status models.ProposalStatus) (*dto.ProposalResponse, error)
}

type proposalService struct {
	db           *gorm.DB
	txm          TxManager
	proposalRepo repositories.ProposalRepository
	orderRepo    repositories.OrderRepository
	jobRepo      repositories.JobRepository
}

func NewProposalService(
	db *gorm.DB,
	txm TxManager,
	proposalRepo repositories.ProposalRepository,
	orderRepo repositories.OrderRepository,
	jobRepo repositories.JobRepository,
) ProposalService {
	return &proposalService{
		db:           db,
		txm:          txm,
		proposalRepo: proposalRepo,
		orderRepo:    orderRepo,
		jobRepo:      jobRepo,
	}
}

func (s *proposalService) CreateProposal(actorID string, req *dto.CreateProposalRequest) (*dto.ProposalResponse, error) {
	order, err := s.orderRepo.FindByID(s.db, req.OrderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ReferenceError("proposal", "order not found")
		}
		return nil, err
	}
	if order.OwnerID == actorID {
		return nil, apperrors.PermissionDenied("proposal", "cannot bid on your own order")
	}
	if !order.IsOpen() {
		return nil, apperrors.InvalidState("proposal", "order is not open")
	}

	proposal := &models.Proposal{
		OwnerID: actorID,
		OrderID: req.OrderID,
		Message: req.Message,
		Price:   req.Price,
		Status:  models.ProposalStatusWaiting,
	}
	// The unique index catches the race between two submissions from the
	// same worker.
	if err := s.proposalRepo.Create(s.db, proposal); err != nil {
		if errors.Is(err, repositories.ErrProposalAlreadyExists) {
			return nil, apperrors.Conflict("proposal", "proposal already exists for this order")
		}
		return nil, err
	}
	return dto.NewProposalResponse(proposal), nil
}

func (s *proposalService) GetProposal(actorID string, isAdmin bool, id string) (*dto.ProposalResponse, error) {
	proposal, err := s.proposalRepo.FindByID(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProposalNotFound) {
			return nil, apperrors.NotFound("proposal", "proposal not found")
		}
		return nil, err
	}

	if !isAdmin && proposal.OwnerID != actorID {
		order, err := s.orderRepo.FindByID(s.db, proposal.OrderID)
		if err != nil {
			return nil, err
		}
		if order.OwnerID != actorID {
			return nil, apperrors.ErrInsufficientPermissions
		}
	}
	return dto.NewProposalResponse(proposal), nil
}

func (s *proposalService) ListProposals(actorID string, isAdmin bool, req *dto.ProposalListRequest) (*dto.ProposalListResponse, error) {
	filter := repositories.ProposalFilter{
		OrderID: req.OrderID,
		Status:  models.ProposalStatus(req.Status),
	}
	filter.Page, filter.PageSize = normalizePagination(req.Page, req.PageSize)

	if !isAdmin {
		if req.OrderID != "" {
			// Listing another order's proposals is reserved for its owner.
			order, err := s.orderRepo.FindByID(s.db, req.OrderID)
			if err != nil {
				if errors.Is(err, repositories.ErrOrderNotFound) {
					return nil, apperrors.NotFound("proposal", "order not found")
				}
				return nil, err
			}
			if order.OwnerID != actorID {
				filter.OwnerID = actorID
			}
		} else {
			filter.OwnerID = actorID
		}
	}

	proposals, total, err := s.proposalRepo.FindAll(s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProposalListResponse{
		Proposals:  make([]*dto.ProposalResponse, 0, len(proposals)),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	}
	for i := range proposals {
		resp.Proposals = append(resp.Proposals, dto.NewProposalResponse(&proposals[i]))
	}
	return resp, nil
}

func (s *proposalService) UpdateStatus(actorID string, id string, status models.ProposalStatus) (*dto.ProposalResponse, error) {
	var resp *dto.ProposalResponse
	err := s.txm.Transaction(func(tx *gorm.DB) error {
		proposal, err := s.proposalRepo.FindByID(tx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrProposalNotFound) {
				return apperrors.NotFound("proposal", "proposal not found")
			}
			return err
		}

		order, err := s.orderRepo.FindByID(tx, proposal.OrderID)
		if err != nil {
			if errors.Is(err, repositories.ErrOrderNotFound) {
				return apperrors.ReferenceError("proposal", "order no longer exists")
			}
			return err
		}

		switch status {
		case models.ProposalStatusApproved, models.ProposalStatusRejected, models.ProposalStatusOffered:
			if order.OwnerID != actorID {
				return apperrors.PermissionDenied("proposal", "only the order owner can resolve proposals")
			}
		case models.ProposalStatusCanceled:
			if proposal.OwnerID != actorID {
				return apperrors.PermissionDenied("proposal", "only the proposal owner can cancel it")
			}
		case models.ProposalStatusWaiting:
			if proposal.OwnerID != actorID {
				return apperrors.PermissionDenied("proposal", "only the proposal owner can restore it")
			}
			if proposal.Status != models.ProposalStatusCanceled {
				return apperrors.InvalidState("proposal", "only canceled proposals can be restored")
			}
		default:
			return apperrors.ValidationFailed("proposal", "unknown proposal status")
		}

		if status == models.ProposalStatusApproved {
			if !proposal.CanApprove() {
				return apperrors.InvalidState("proposal", "proposal cannot be approved from its current status")
			}
			if !order.IsOpen() {
				return apperrors.InvalidState("proposal", "order is not open")
			}

			proposal.Status = models.ProposalStatusApproved
			if err := s.proposalRepo.Update(tx, proposal); err != nil {
				return err
			}

			order.Status = models.OrderStatusClosed
			if err := s.orderRepo.Update(tx, order); err != nil {
				return err
			}

			job, err := s.ensureJob(tx, proposal)
			if err != nil {
				return err
			}

			resp = dto.NewProposalResponse(proposal)
			resp.JobID = job.ID
			return nil
		}

		if proposal.Status == models.ProposalStatusApproved {
			return apperrors.InvalidState("proposal", "approved proposals cannot be resolved again")
		}

		proposal.Status = status
		if err := s.proposalRepo.Update(tx, proposal); err != nil {
			return err
		}
		resp = dto.NewProposalResponse(proposal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ensureJob creates the job for an approved proposal exactly once. A repeat
// approval, or a concurrent one losing the unique-index race, resolves to the
// already existing job.
func (s *proposalService) ensureJob(tx *gorm.DB, proposal *models.Proposal) (*models.Job, error) {
	existing, err := s.jobRepo.FindByProposal(tx, proposal.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrJobNotFound) {
		return nil, err
	}

	job := &models.Job{
		OrderID:    proposal.OrderID,
		ProposalID: proposal.ID,
		AssigneeID: proposal.OwnerID,
		Price:      proposal.Price,
		Status:     models.JobStatusInProgress,
	}
	if err := s.jobRepo.Create(tx, job); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.jobRepo.FindByProposal(tx, proposal.ID)
		}
		return nil, err
	}
	return job, nil
}
