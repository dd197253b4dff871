package services

import (
	"time"

	"usta_backend/internal/repositories"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type StatsService interface {
	// RecomputeFor counts registrations, orders and proposals created on the
	// given day and upserts the per-day counters.
	RecomputeFor(day time.Time) error
	GetRange(req *dto.StatsRangeRequest) ([]*dto.DailyStatsResponse, error)
}

type statsService struct {
	db           *gorm.DB
	statsRepo    repositories.StatsRepository
	userRepo     repositories.UserRepository
	orderRepo    repositories.OrderRepository
	proposalRepo repositories.ProposalRepository
}

func NewStatsService(
	db *gorm.DB,
	statsRepo repositories.StatsRepository,
	userRepo repositories.UserRepository,
	orderRepo repositories.OrderRepository,
	proposalRepo repositories.ProposalRepository,
) StatsService {
	return &statsService{
		db:           db,
		statsRepo:    statsRepo,
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		proposalRepo: proposalRepo,
	}
}

func (s *statsService) RecomputeFor(day time.Time) error {
	day = day.Truncate(24 * time.Hour)

	users, err := s.userRepo.CountRegisteredOn(s.db, day)
	if err != nil {
		return err
	}
	if err := s.statsRepo.UpsertUserStats(s.db, day, int(users)); err != nil {
		return err
	}

	orders, err := s.orderRepo.CountCreatedOn(s.db, day)
	if err != nil {
		return err
	}
	if err := s.statsRepo.UpsertOrderStats(s.db, day, int(orders)); err != nil {
		return err
	}

	proposals, err := s.proposalRepo.CountCreatedOn(s.db, day)
	if err != nil {
		return err
	}
	return s.statsRepo.UpsertProposalStats(s.db, day, int(proposals))
}

func (s *statsService) GetRange(req *dto.StatsRangeRequest) ([]*dto.DailyStatsResponse, error) {
	to := time.Now().Truncate(24 * time.Hour)
	from := to.AddDate(0, 0, -30)

	var err error
	if req.From != "" {
		from, err = time.Parse("2006-01-02", req.From)
		if err != nil {
			return nil, apperrors.ValidationFailed("stats", "from must be YYYY-MM-DD")
		}
	}
	if req.To != "" {
		to, err = time.Parse("2006-01-02", req.To)
		if err != nil {
			return nil, apperrors.ValidationFailed("stats", "to must be YYYY-MM-DD")
		}
	}
	if from.After(to) {
		return nil, apperrors.ValidationFailed("stats", "from must not be after to")
	}

	userStats, err := s.statsRepo.FindUserStats(s.db, from, to)
	if err != nil {
		return nil, err
	}
	orderStats, err := s.statsRepo.FindOrderStats(s.db, from, to)
	if err != nil {
		return nil, err
	}
	proposalStats, err := s.statsRepo.FindProposalStats(s.db, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*dto.DailyStatsResponse)
	dayKey := func(t time.Time) string { return t.Format("2006-01-02") }
	entry := func(t time.Time) *dto.DailyStatsResponse {
		key := dayKey(t)
		if e, ok := byDay[key]; ok {
			return e
		}
		e := &dto.DailyStatsResponse{Date: t}
		byDay[key] = e
		return e
	}

	for _, st := range userStats {
		entry(st.Date).RegisteredUsers = st.RegisteredUsers
	}
	for _, st := range orderStats {
		entry(st.Date).CreatedOrders = st.CreatedOrders
	}
	for _, st := range proposalStats {
		entry(st.Date).CreatedProposals = st.CreatedProposals
	}

	resp := make([]*dto.DailyStatsResponse, 0, len(byDay))
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if e, ok := byDay[dayKey(d)]; ok {
			resp = append(resp, e)
		}
	}
	return resp, nil
}
