package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nikitav/billboard/internal/model"
	"github.com/nikitav/billboard/internal/repository"
	"github.com/nikitav/billboard/internal/validation"
)

// BillboardService handles creation, lookup, and deletion of billboard posts.
type BillboardService struct {
	repo   repository.BillboardRepository
	logger *slog.Logger
}

// NewBillboardService creates a BillboardService.
func NewBillboardService(repo repository.BillboardRepository, logger *slog.Logger) *BillboardService {
	return &BillboardService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates the payload and persists a new billboard owned by
// in.UserID.
//
// Three failure modes, all classified:
//   - missing/invalid fields        → validation error (400)
//   - duplicate topic/description   → conflict (409)
//   - user_id with no matching user → validation error on user_id (400),
//     detected by the store's foreign-key constraint
func (s *BillboardService) Create(ctx context.Context, in validation.CreateBillboardInput) (*model.Billboard, error) {
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	billboard := &model.Billboard{
		Topic:       in.Topic,
		Description: in.Description,
		UserID:      in.UserID,
	}

	if err := s.repo.Create(ctx, billboard); err != nil {
		return nil, fmt.Errorf("creating billboard: %w", err)
	}

	s.logger.Info("billboard published",
		slog.Int64("id", billboard.ID),
		slog.String("topic", billboard.Topic),
		slog.Int64("user_id", billboard.UserID),
	)

	return billboard, nil
}

// GetByID retrieves a billboard by id.
// Returns apperror.ErrNotFound if it doesn't exist.
func (s *BillboardService) GetByID(ctx context.Context, id int64) (*model.Billboard, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a billboard by id.
func (s *BillboardService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("billboard deleted", slog.Int64("id", id))
	return nil
}
