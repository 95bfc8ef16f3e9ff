package services

import (
	"context"

	"github.com/rafabene/promptdiff-backend/internal/domain/entities"
	"github.com/rafabene/promptdiff-backend/internal/domain/errors"
	"github.com/rafabene/promptdiff-backend/internal/domain/ports"
	"github.com/rafabene/promptdiff-backend/internal/domain/repositories"
)

// PromptView é o view model de leitura: prompt + campos de exibição do
// autor + estado de like do viewer quando conhecido
type PromptView struct {
	Prompt         *entities.Prompt
	AuthorName     string
	AuthorAvatar   string
	ViewerHasLiked bool
}

// QueryService monta os view models das listagens e da página de
// detalhe. Somente leitura, nunca muta.
type QueryService struct {
	promptRepo repositories.PromptRepository
	likeRepo   repositories.LikeRepository
	userRepo   repositories.UserRepository
	logger     ports.Logger
}

// NewQueryService cria um novo QueryService
func NewQueryService(
	promptRepo repositories.PromptRepository,
	likeRepo repositories.LikeRepository,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *QueryService {
	return &QueryService{
		promptRepo: promptRepo,
		likeRepo:   likeRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// GetPromptByID busca um prompt com os dados de exibição do autor.
// viewerID vazio significa visitante anônimo: ViewerHasLiked fica false.
func (s *QueryService) GetPromptByID(ctx context.Context, promptID, viewerID string) (*PromptView, error) {
	prompt, err := s.promptRepo.FindByID(ctx, promptID)
	if err != nil {
		return nil, errors.ErrPersistenceFailure
	}
	if prompt == nil {
		return nil, errors.ErrPromptNotFound
	}

	view, err := s.buildView(ctx, prompt, viewerID, nil)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ListPrompts lista todos os prompts na ordenação pedida
func (s *QueryService) ListPrompts(ctx context.Context, sort repositories.PromptSort, viewerID string) ([]*PromptView, error) {
	prompts, err := s.promptRepo.List(ctx, sort)
	if err != nil {
		return nil, errors.ErrPersistenceFailure
	}
	return s.buildViews(ctx, prompts, viewerID, false)
}

// ListUserPrompts lista os prompts publicados pelo usuário
func (s *QueryService) ListUserPrompts(ctx context.Context, userID string) ([]*PromptView, error) {
	prompts, err := s.promptRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.ErrPersistenceFailure
	}
	return s.buildViews(ctx, prompts, userID, false)
}

// ListLikedPrompts lista os prompts curtidos pelo usuário, do like mais
// recente para o mais antigo. Todos vêm com ViewerHasLiked = true por
// construção.
func (s *QueryService) ListLikedPrompts(ctx context.Context, userID string) ([]*PromptView, error) {
	if userID == "" {
		return nil, errors.ErrUnauthenticated
	}

	prompts, err := s.promptRepo.ListLikedByUser(ctx, userID)
	if err != nil {
		return nil, errors.ErrPersistenceFailure
	}
	return s.buildViews(ctx, prompts, userID, true)
}

func (s *QueryService) buildViews(ctx context.Context, prompts []*entities.Prompt, viewerID string, allLiked bool) ([]*PromptView, error) {
	// cache de autores para não rebuscar o mesmo usuário a cada prompt
	authors := make(map[string]*entities.User)

	views := make([]*PromptView, 0, len(prompts))
	for _, prompt := range prompts {
		view, err := s.buildView(ctx, prompt, viewerID, authors)
		if err != nil {
			return nil, err
		}
		if allLiked {
			view.ViewerHasLiked = true
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *QueryService) buildView(ctx context.Context, prompt *entities.Prompt, viewerID string, authors map[string]*entities.User) (*PromptView, error) {
	view := &PromptView{
		Prompt:       prompt,
		AuthorName:   entities.DefaultDisplayName,
		AuthorAvatar: entities.DefaultAvatarURL,
	}

	author, ok := authors[prompt.UserID]
	if !ok {
		found, err := s.userRepo.FindByID(ctx, prompt.UserID)
		if err != nil {
			return nil, errors.ErrPersistenceFailure
		}
		author = found
		if authors != nil {
			authors[prompt.UserID] = author
		}
	}
	if author != nil {
		view.AuthorName = author.DisplayName()
		view.AuthorAvatar = author.AvatarOrDefault()
	}

	if viewerID != "" && !view.ViewerHasLiked {
		like, err := s.likeRepo.FindByUserAndPrompt(ctx, viewerID, prompt.ID)
		if err != nil {
			return nil, errors.ErrPersistenceFailure
		}
		view.ViewerHasLiked = like != nil
	}

	return view, nil
}
