package workers

import (
	"context"
	"time"

	"usta_backend/internal/logger"
	"usta_backend/internal/repositories"

	"gorm.io/gorm"
)

// TokenCleaner removes expired refresh tokens so the table does not grow
// without bound.
type TokenCleaner struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	interval time.Duration
}

func NewTokenCleaner(db *gorm.DB, userRepo repositories.UserRepository, interval time.Duration) *TokenCleaner {
	return &TokenCleaner{db: db, userRepo: userRepo, interval: interval}
}

func (w *TokenCleaner) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("token cleaner stopped")
			return
		case <-ticker.C:
			if err := w.userRepo.CleanExpiredRefreshTokens(w.db); err != nil {
				logger.Error("refresh token cleanup failed", "error", err.Error())
			}
		}
	}
}
