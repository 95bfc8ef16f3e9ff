package repositories

import (
	"context"

	"github.com/rafabene/promptdiff-backend/internal/domain/entities"
)

// LikeRepository define a interface para persistência de likes.
// Linhas de Like são mutadas apenas dentro da transação do toggle
// (ou da exclusão em cascata de um prompt).
type LikeRepository interface {
	Create(ctx context.Context, like *entities.Like) error
	Delete(ctx context.Context, id string) error
	FindByUserAndPrompt(ctx context.Context, userID, promptID string) (*entities.Like, error)
	DeleteByPrompt(ctx context.Context, promptID string) error
	CountByPrompt(ctx context.Context, promptID string) (int64, error)
}
