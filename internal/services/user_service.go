package services

import (
	"context"

	"github.com/rafabene/promptdiff-backend/internal/domain/entities"
	"github.com/rafabene/promptdiff-backend/internal/domain/errors"
	"github.com/rafabene/promptdiff-backend/internal/domain/ports"
	"github.com/rafabene/promptdiff-backend/internal/domain/repositories"
)

// UserService contém a lógica de perfil do usuário
type UserService struct {
	userRepo repositories.UserRepository
	storage  ports.StorageProvider
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	storage ports.StorageProvider,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.ErrPersistenceFailure
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile atualiza nome e avatar do próprio usuário. O avatar só
// é trocado quando um novo arquivo foi enviado; nome vazio mantém o
// atual.
func (s *UserService) UpdateProfile(ctx context.Context, callerID, name string, avatar *Upload) (*entities.User, error) {
	if callerID == "" {
		return nil, errors.ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return nil, errors.ErrPersistenceFailure
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if avatar.IsPresent() {
		url, err := s.storage.Store(ctx, avatar.Data, avatar.metadata())
		if err != nil {
			s.logger.Error("avatar upload failed", "user_id", callerID, "error", err)
			return nil, errors.ErrStorageFailure
		}
		user.AvatarURL = &url
	}

	if name != "" {
		user.Name = name
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("failed to update profile", "user_id", callerID, "error", err)
		return nil, errors.ErrPersistenceFailure
	}

	s.logger.Info("profile updated", "user_id", callerID)
	return user, nil
}
