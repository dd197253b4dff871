package handlers

import "usta_backend/internal/services"

// AppHandlers groups every HTTP handler behind one constructor.
type AppHandlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	User     *UserHandler
	Profile  *ProfileHandler
	Category *CategoryHandler
	Order    *OrderHandler
	Proposal *ProposalHandler
	Job      *JobHandler
	Appeal   *AppealHandler
	Review   *ReviewHandler
	Stats    *StatsHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	return &AppHandlers{
		Health:   NewHealthHandler(),
		Auth:     NewAuthHandler(sc.Auth),
		User:     NewUserHandler(sc.User),
		Profile:  NewProfileHandler(sc.Profile),
		Category: NewCategoryHandler(sc.Category),
		Order:    NewOrderHandler(sc.Order),
		Proposal: NewProposalHandler(sc.Proposal),
		Job:      NewJobHandler(sc.Job),
		Appeal:   NewAppealHandler(sc.Appeal),
		Review:   NewReviewHandler(sc.Review),
		Stats:    NewStatsHandler(sc.Stats),
	}
}
