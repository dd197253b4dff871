package services

import (
	"usta_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer wires repositories into services over a shared database
// handle.
type ServiceContainer struct {
	Auth     AuthService
	User     UserService
	Profile  ProfileService
	Category CategoryService
	Order    OrderService
	Proposal ProposalService
	Job      JobService
	Appeal   AppealService
	Review   ReviewService
	Stats    StatsService
}

func NewServiceContainer(db *gorm.DB) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	categoryRepo := repositories.NewCategoryRepository()
	orderRepo := repositories.NewOrderRepository()
	proposalRepo := repositories.NewProposalRepository()
	jobRepo := repositories.NewJobRepository()
	appealRepo := repositories.NewAppealRepository()
	reviewRepo := repositories.NewReviewRepository()
	statsRepo := repositories.NewStatsRepository()

	var txm TxManager = db

	return &ServiceContainer{
		Auth:     NewAuthService(db, txm, userRepo),
		User:     NewUserService(db, txm, userRepo),
		Profile:  NewProfileService(db, txm, profileRepo),
		Category: NewCategoryService(db, categoryRepo),
		Order:    NewOrderService(db, txm, orderRepo, categoryRepo),
		Proposal: NewProposalService(db, txm, proposalRepo, orderRepo, jobRepo),
		Job:      NewJobService(db, txm, jobRepo),
		Appeal:   NewAppealService(db, txm, appealRepo, jobRepo, profileRepo),
		Review:   NewReviewService(db, txm, reviewRepo, jobRepo, profileRepo),
		Stats:    NewStatsService(db, statsRepo, userRepo, orderRepo, proposalRepo),
	}
}
