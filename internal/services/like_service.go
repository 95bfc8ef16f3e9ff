package services

import (
	"context"

	"github.com/rafabene/promptdiff-backend/internal/domain/entities"
	"github.com/rafabene/promptdiff-backend/internal/domain/errors"
	"github.com/rafabene/promptdiff-backend/internal/domain/ports"
	"github.com/rafabene/promptdiff-backend/internal/domain/repositories"
)

// LikeService mantém o conjunto de relações (usuário, prompt) e o
// contador desnormalizado likes_count em sincronia. As linhas de Like
// são a fonte de verdade; o contador é cache e só muda na mesma
// transação que muta a linha.
type LikeService struct {
	likeRepo   repositories.LikeRepository
	promptRepo repositories.PromptRepository
	uow        ports.UnitOfWork
	logger     ports.Logger
}

// NewLikeService cria um novo LikeService
func NewLikeService(
	likeRepo repositories.LikeRepository,
	promptRepo repositories.PromptRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *LikeService {
	return &LikeService{
		likeRepo:   likeRepo,
		promptRepo: promptRepo,
		uow:        uow,
		logger:     logger,
	}
}

// ToggleResult é o resultado de um toggle de like
type ToggleResult struct {
	Liked    bool
	NewCount int64
}

// Toggle alterna o estado de like do chamador sobre o prompt.
// Verificação e mutação acontecem dentro de uma única transação; o
// índice único em (user_id, prompt_id) barra a dupla submissão do mesmo
// usuário, e o ajuste do contador é uma expressão atômica no banco,
// então toggles concorrentes de usuários distintos comutam sem perder
// incrementos.
func (s *LikeService) Toggle(ctx context.Context, promptID, callerID string) (*ToggleResult, error) {
	if callerID == "" {
		return nil, errors.ErrUnauthenticated
	}

	prompt, err := s.promptRepo.FindByID(ctx, promptID)
	if err != nil {
		return nil, errors.ErrPersistenceFailure
	}
	if prompt == nil {
		return nil, errors.ErrPromptNotFound
	}

	var result ToggleResult
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.likeRepo.FindByUserAndPrompt(txCtx, callerID, promptID)
		if err != nil {
			return err
		}

		if existing != nil {
			if err := s.likeRepo.Delete(txCtx, existing.ID); err != nil {
				return err
			}
			if err := s.promptRepo.AdjustLikesCount(txCtx, promptID, -1); err != nil {
				return err
			}
			result.Liked = false
		} else {
			like := &entities.Like{UserID: callerID, PromptID: promptID}
			if err := s.likeRepo.Create(txCtx, like); err != nil {
				return err
			}
			if err := s.promptRepo.AdjustLikesCount(txCtx, promptID, 1); err != nil {
				return err
			}
			result.Liked = true
		}

		// Relê o contador dentro da transação para devolver o valor
		// que de fato foi comitado
		updated, err := s.promptRepo.FindByID(txCtx, promptID)
		if err != nil {
			return err
		}
		if updated != nil {
			result.NewCount = updated.LikesCount
		}
		return nil
	})
	if err != nil {
		s.logger.Error("like toggle failed", "prompt_id", promptID, "caller", callerID, "error", err)
		return nil, errors.ErrPersistenceFailure
	}

	s.logger.Info("like toggled",
		"prompt_id", promptID,
		"caller", callerID,
		"liked", result.Liked,
		"likes_count", result.NewCount,
	)
	return &result, nil
}
