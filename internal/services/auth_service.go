package services

import (
	"context"
	stderrors "errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/promptdiff-backend/internal/domain/entities"
	"github.com/rafabene/promptdiff-backend/internal/domain/errors"
	"github.com/rafabene/promptdiff-backend/internal/domain/ports"
	"github.com/rafabene/promptdiff-backend/internal/domain/repositories"
	"github.com/rafabene/promptdiff-backend/internal/domain/valueobjects"
)

// AuthService contém registro e autenticação por credenciais locais.
// Contas autenticadas por provedores externos chegam sem hash de senha
// e nunca passam pelo Login daqui.
type AuthService struct {
	userRepo repositories.UserRepository
	issuer   ports.TokenIssuer
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	issuer ports.TokenIssuer,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// RegisterInput representa os dados de registro
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Register cria uma nova conta com senha local
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrValidation
	}
	if len(input.Password) < 6 {
		return nil, errors.ErrValidation
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, errors.ErrPersistenceFailure
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.ErrPersistenceFailure
	}

	name := input.Name
	if name == "" {
		// fallback: parte local do email
		name = strings.SplitN(email.String(), "@", 2)[0]
	}

	hashStr := string(hash)
	user := &entities.User{
		Email:        email,
		Name:         name,
		PasswordHash: &hashStr,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// dois registros concorrentes do mesmo email passam ambos pela
		// checagem de existência; o perdedor esbarra no índice único
		if stderrors.Is(err, errors.ErrEmailAlreadyExists) {
			return nil, errors.ErrEmailAlreadyExists
		}
		s.logger.Error("failed to create user", "email", email.String(), "error", err)
		return nil, errors.ErrPersistenceFailure
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login autentica por email/senha e emite um token de sessão
func (s *AuthService) Login(ctx context.Context, emailRaw, password string) (*entities.User, string, error) {
	email, err := valueobjects.NewEmail(emailRaw)
	if err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, "", errors.ErrPersistenceFailure
	}
	if user == nil || !user.HasLocalCredentials() {
		return nil, "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		s.logger.Error("failed to issue token", "user_id", user.ID, "error", err)
		return nil, "", errors.ErrPersistenceFailure
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}
