package entities

import (
	"errors"
	"strings"
	"time"
)

const (
	// DefaultPromptTitle é o título usado quando não informado
	DefaultPromptTitle = "Nouveau Prompt"
)

// Prompt representa uma comparação antes/depois publicada por um usuário.
// BeforeImage e AfterImage são URLs produzidas pelo storage provider.
// LikesCount é um cache desnormalizado do total de likes: a fonte de
// verdade são as linhas de Like, e o contador só muda na mesma transação
// que cria ou remove a linha correspondente.
type Prompt struct {
	ID          string
	UserID      string // dono, imutável após a criação
	Title       string
	PromptText  string
	Model       string
	Params      string
	BeforeImage string
	AfterImage  string
	LikesCount  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy verifica se o prompt pertence ao usuário informado
func (p *Prompt) IsOwnedBy(userID string) bool {
	return p.UserID == userID && userID != ""
}

// Validate valida regras de negócio da entidade Prompt
func (p *Prompt) Validate() error {
	if strings.TrimSpace(p.PromptText) == "" {
		return errors.New("prompt text is required")
	}

	if p.BeforeImage == "" || p.AfterImage == "" {
		return errors.New("before and after images are required")
	}

	if p.UserID == "" {
		return errors.New("owner is required")
	}

	if p.LikesCount < 0 {
		return errors.New("likes count must not be negative")
	}

	return nil
}
