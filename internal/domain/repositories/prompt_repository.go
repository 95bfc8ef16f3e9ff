package repositories

import (
	"context"

	"github.com/rafabene/promptdiff-backend/internal/domain/entities"
)

// PromptSort define a ordenação das listagens de prompts
type PromptSort string

const (
	// SortRecent ordena por data de criação (feed)
	SortRecent PromptSort = "recent"
	// SortPopular ordena por total de likes (tendências)
	SortPopular PromptSort = "popular"
)

// PromptRepository define a interface para persistência de prompts
type PromptRepository interface {
	Create(ctx context.Context, prompt *entities.Prompt) error
	FindByID(ctx context.Context, id string) (*entities.Prompt, error)
	Update(ctx context.Context, prompt *entities.Prompt) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, sort PromptSort) ([]*entities.Prompt, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.Prompt, error)
	ListLikedByUser(ctx context.Context, userID string) ([]*entities.Prompt, error)

	// AdjustLikesCount aplica um incremento/decremento atômico no contador
	// desnormalizado, direto no banco (nunca read-modify-write na aplicação).
	// Deve ser chamado na mesma transação que muta a linha de Like.
	AdjustLikesCount(ctx context.Context, id string, delta int) error
}
