package services

import (
	"testing"
	"time"

	"usta_backend/internal/models"
	"usta_backend/internal/repositories"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStatsRepo struct {
	users     map[string]int
	orders    map[string]int
	proposals map[string]int
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{
		users:     make(map[string]int),
		orders:    make(map[string]int),
		proposals: make(map[string]int),
	}
}

func day(t time.Time) string { return t.Format("2006-01-02") }

func (r *fakeStatsRepo) UpsertUserStats(_ *gorm.DB, d time.Time, registered int) error {
	r.users[day(d)] = registered
	return nil
}

func (r *fakeStatsRepo) UpsertOrderStats(_ *gorm.DB, d time.Time, created int) error {
	r.orders[day(d)] = created
	return nil
}

func (r *fakeStatsRepo) UpsertProposalStats(_ *gorm.DB, d time.Time, created int) error {
	r.proposals[day(d)] = created
	return nil
}

func (r *fakeStatsRepo) FindUserStats(_ *gorm.DB, from, to time.Time) ([]models.UserStats, error) {
	var stats []models.UserStats
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if count, ok := r.users[day(d)]; ok {
			stats = append(stats, models.UserStats{Date: d, RegisteredUsers: count})
		}
	}
	return stats, nil
}

func (r *fakeStatsRepo) FindOrderStats(_ *gorm.DB, from, to time.Time) ([]models.OrderStats, error) {
	var stats []models.OrderStats
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if count, ok := r.orders[day(d)]; ok {
			stats = append(stats, models.OrderStats{Date: d, CreatedOrders: count})
		}
	}
	return stats, nil
}

func (r *fakeStatsRepo) FindProposalStats(_ *gorm.DB, from, to time.Time) ([]models.ProposalStats, error) {
	var stats []models.ProposalStats
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if count, ok := r.proposals[day(d)]; ok {
			stats = append(stats, models.ProposalStats{Date: d, CreatedProposals: count})
		}
	}
	return stats, nil
}

// fakeUserRepo only serves the daily counter; the rest is unused here.
type fakeUserRepo struct{ registered int64 }

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error        { return nil }
func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error { return nil }
func (r *fakeUserRepo) Delete(_ *gorm.DB, id string) error         { return nil }
func (r *fakeUserRepo) FindAll(_ *gorm.DB, filter repositories.UserFilter) ([]models.User, int64, error) {
	return nil, 0, nil
}
func (r *fakeUserRepo) CountRegisteredOn(_ *gorm.DB, d time.Time) (int64, error) {
	return r.registered, nil
}
func (r *fakeUserRepo) CreateRefreshToken(_ *gorm.DB, token *models.RefreshToken) error { return nil }
func (r *fakeUserRepo) FindRefreshToken(_ *gorm.DB, token string) (*models.RefreshToken, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fakeUserRepo) DeleteRefreshToken(_ *gorm.DB, token string) error       { return nil }
func (r *fakeUserRepo) DeleteUserRefreshTokens(_ *gorm.DB, userID string) error { return nil }
func (r *fakeUserRepo) CleanExpiredRefreshTokens(_ *gorm.DB) error              { return nil }

func TestRecomputeFor(t *testing.T) {
	m := newMemDB()
	m.addOrder(customerID, models.OrderStatusOpen)
	m.addOrder(customerID, models.OrderStatusOpen)

	statsRepo := newFakeStatsRepo()
	svc := NewStatsService(nil, statsRepo, &fakeUserRepo{registered: 3}, &fakeOrderRepo{m}, &fakeProposalRepo{m})

	today := time.Now()
	require.NoError(t, svc.RecomputeFor(today))

	assert.Equal(t, 3, statsRepo.users[day(today)])
	assert.Equal(t, 2, statsRepo.orders[day(today)])
	assert.Equal(t, 0, statsRepo.proposals[day(today)])
}

func TestGetRange(t *testing.T) {
	statsRepo := newFakeStatsRepo()
	d1, _ := time.Parse("2006-01-02", "2026-08-01")
	d2, _ := time.Parse("2006-01-02", "2026-08-02")
	statsRepo.users[day(d1)] = 4
	statsRepo.orders[day(d1)] = 2
	statsRepo.proposals[day(d2)] = 7

	svc := NewStatsService(nil, statsRepo, &fakeUserRepo{}, &fakeOrderRepo{newMemDB()}, &fakeProposalRepo{newMemDB()})

	resp, err := svc.GetRange(&dto.StatsRangeRequest{From: "2026-08-01", To: "2026-08-03"})
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, 4, resp[0].RegisteredUsers)
	assert.Equal(t, 2, resp[0].CreatedOrders)
	assert.Equal(t, 7, resp[1].CreatedProposals)
}

func TestGetRangeRejectsInvertedRange(t *testing.T) {
	svc := NewStatsService(nil, newFakeStatsRepo(), &fakeUserRepo{}, &fakeOrderRepo{newMemDB()}, &fakeProposalRepo{newMemDB()})

	_, err := svc.GetRange(&dto.StatsRangeRequest{From: "2026-08-05", To: "2026-08-01"})
	assert.Equal(t, apperrors.CodeValidationFailed, errCode(t, err))
}
