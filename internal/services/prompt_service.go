package services

import (
	"context"
	"strings"

	"github.com/rafabene/promptdiff-backend/internal/domain/entities"
	"github.com/rafabene/promptdiff-backend/internal/domain/errors"
	"github.com/rafabene/promptdiff-backend/internal/domain/ports"
	"github.com/rafabene/promptdiff-backend/internal/domain/repositories"
)

// Upload carrega o conteúdo e os metadados de um arquivo enviado
type Upload struct {
	Data        []byte
	Name        string
	ContentType string
}

// IsPresent verifica se um upload foi de fato enviado
func (u *Upload) IsPresent() bool {
	return u != nil && len(u.Data) > 0
}

func (u *Upload) metadata() ports.UploadMetadata {
	return ports.UploadMetadata{
		Name:        u.Name,
		ContentType: u.ContentType,
		SizeBytes:   int64(len(u.Data)),
	}
}

// PromptService contém a lógica de mutação de prompts: criação, edição
// e exclusão, sempre com verificação de propriedade.
type PromptService struct {
	promptRepo   repositories.PromptRepository
	likeRepo     repositories.LikeRepository
	uow          ports.UnitOfWork
	storage      ports.StorageProvider
	logger       ports.Logger
	defaultModel string
}

// NewPromptService cria um novo PromptService
func NewPromptService(
	promptRepo repositories.PromptRepository,
	likeRepo repositories.LikeRepository,
	uow ports.UnitOfWork,
	storage ports.StorageProvider,
	logger ports.Logger,
	defaultModel string,
) *PromptService {
	return &PromptService{
		promptRepo:   promptRepo,
		likeRepo:     likeRepo,
		uow:          uow,
		storage:      storage,
		logger:       logger,
		defaultModel: defaultModel,
	}
}

// PromptInput representa os campos editáveis de um prompt
type PromptInput struct {
	Title      string
	PromptText string
	Model      string
	Params     string
}

// CreatePrompt publica uma nova comparação antes/depois. As duas
// imagens são enviadas ao storage antes de qualquer escrita no banco:
// se qualquer upload falhar, nenhuma linha é gravada — nunca existe
// prompt com uma imagem só.
func (s *PromptService) CreatePrompt(ctx context.Context, ownerID string, input PromptInput, before, after *Upload) (*entities.Prompt, error) {
	if ownerID == "" {
		return nil, errors.ErrUnauthenticated
	}

	if strings.TrimSpace(input.PromptText) == "" || !before.IsPresent() || !after.IsPresent() {
		return nil, errors.ErrValidation
	}

	beforeURL, err := s.storage.Store(ctx, before.Data, before.metadata())
	if err != nil {
		s.logger.Error("before image upload failed", "owner", ownerID, "error", err)
		return nil, errors.ErrStorageFailure
	}

	afterURL, err := s.storage.Store(ctx, after.Data, after.metadata())
	if err != nil {
		s.logger.Error("after image upload failed", "owner", ownerID, "error", err)
		return nil, errors.ErrStorageFailure
	}

	prompt := &entities.Prompt{
		UserID:      ownerID,
		Title:       input.Title,
		PromptText:  input.PromptText,
		Model:       input.Model,
		Params:      input.Params,
		BeforeImage: beforeURL,
		AfterImage:  afterURL,
		LikesCount:  0,
	}
	if prompt.Title == "" {
		prompt.Title = entities.DefaultPromptTitle
	}
	if prompt.Model == "" {
		prompt.Model = s.defaultModel
	}

	if err := s.promptRepo.Create(ctx, prompt); err != nil {
		s.logger.Error("failed to persist prompt", "owner", ownerID, "error", err)
		return nil, errors.ErrPersistenceFailure
	}

	s.logger.Info("prompt created", "prompt_id", prompt.ID, "owner", ownerID)
	return prompt, nil
}

// UpdatePrompt edita um prompt existente. Imagens são substituídas
// apenas quando um novo blob foi enviado; os demais campos são gravados
// como vieram. Os blobs antigos não são removidos do storage (vazamento
// aceito do design original).
func (s *PromptService) UpdatePrompt(ctx context.Context, promptID, callerID string, input PromptInput, before, after *Upload) (*entities.Prompt, error) {
	prompt, err := s.loadAndAuthorize(ctx, promptID, callerID)
	if err != nil {
		return nil, err
	}

	if before.IsPresent() {
		url, err := s.storage.Store(ctx, before.Data, before.metadata())
		if err != nil {
			s.logger.Error("before image upload failed", "prompt_id", promptID, "error", err)
			return nil, errors.ErrStorageFailure
		}
		prompt.BeforeImage = url
	}

	if after.IsPresent() {
		url, err := s.storage.Store(ctx, after.Data, after.metadata())
		if err != nil {
			s.logger.Error("after image upload failed", "prompt_id", promptID, "error", err)
			return nil, errors.ErrStorageFailure
		}
		prompt.AfterImage = url
	}

	prompt.Title = input.Title
	if prompt.Title == "" {
		prompt.Title = entities.DefaultPromptTitle
	}
	prompt.PromptText = input.PromptText
	prompt.Model = input.Model
	prompt.Params = input.Params

	if err := s.promptRepo.Update(ctx, prompt); err != nil {
		s.logger.Error("failed to update prompt", "prompt_id", promptID, "error", err)
		return nil, errors.ErrPersistenceFailure
	}

	s.logger.Info("prompt updated", "prompt_id", promptID, "caller", callerID)
	return prompt, nil
}

// DeletePrompt exclui um prompt e todos os likes que o referenciam na
// mesma transação: leitores nunca observam likes órfãos.
func (s *PromptService) DeletePrompt(ctx context.Context, promptID, callerID string) error {
	if _, err := s.loadAndAuthorize(ctx, promptID, callerID); err != nil {
		return err
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.likeRepo.DeleteByPrompt(txCtx, promptID); err != nil {
			return err
		}
		return s.promptRepo.Delete(txCtx, promptID)
	})
	if err != nil {
		s.logger.Error("failed to delete prompt", "prompt_id", promptID, "error", err)
		return errors.ErrPersistenceFailure
	}

	s.logger.Info("prompt deleted", "prompt_id", promptID, "caller", callerID)
	return nil
}

// loadAndAuthorize centraliza o passo "carregar e autorizar" usado por
// update e delete: retorna o prompt quando o chamador é o dono, senão
// ErrPromptNotFound/ErrForbidden.
func (s *PromptService) loadAndAuthorize(ctx context.Context, promptID, callerID string) (*entities.Prompt, error) {
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
	if !prompt.IsOwnedBy(callerID) {
		return nil, errors.ErrForbidden
	}

	return prompt, nil
}
