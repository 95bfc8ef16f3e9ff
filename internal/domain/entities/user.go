package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/rafabene/promptdiff-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

const (
	// DefaultDisplayName é exibido quando o usuário não informou um nome
	DefaultDisplayName = "Anonyme"
	// DefaultAvatarURL é o avatar placeholder para usuários sem imagem
	DefaultAvatarURL = "https://github.com/shadcn.png"
)

// User representa um usuário do sistema
type User struct {
	ID           string
	Email        valueobjects.Email
	Name         string
	PasswordHash *string // nil para contas autenticadas externamente
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasLocalCredentials verifica se o usuário possui senha local
// (contas OAuth não possuem hash de senha)
func (u *User) HasLocalCredentials() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// DisplayName retorna o nome de exibição com fallback
func (u *User) DisplayName() string {
	if strings.TrimSpace(u.Name) == "" {
		return DefaultDisplayName
	}
	return u.Name
}

// AvatarOrDefault retorna a URL do avatar com fallback para o placeholder
func (u *User) AvatarOrDefault() string {
	if u.AvatarURL == nil || *u.AvatarURL == "" {
		return DefaultAvatarURL
	}
	return *u.AvatarURL
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	return nil
}
