package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/rafabene/promptdiff-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/promptdiff-backend/internal/domain/errors"
	"github.com/rafabene/promptdiff-backend/internal/domain/ports"
	"github.com/rafabene/promptdiff-backend/internal/domain/repositories"
	"github.com/rafabene/promptdiff-backend/internal/domain/valueobjects"
)

// Fakes em memória para as portas usadas pelos services.

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)    {}
func (noopLogger) Error(msg string, args ...any)   {}
func (noopLogger) Debug(msg string, args ...any)   {}
func (noopLogger) Warn(msg string, args ...any)    {}
func (l noopLogger) With(args ...any) ports.Logger { return l }

// fakeUnitOfWork executa fn diretamente; registra commits e rollbacks
type fakeUnitOfWork struct {
	commits   int
	rollbacks int
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (u *fakeUnitOfWork) Commit(ctx context.Context) error                   { u.commits++; return nil }
func (u *fakeUnitOfWork) Rollback(ctx context.Context) error                 { u.rollbacks++; return nil }

func (u *fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		u.rollbacks++
		return err
	}
	u.commits++
	return nil
}

// fakeStorage devolve URLs previsíveis; failAfter > 0 faz a chamada de
// número failAfter (e as seguintes) falharem
type fakeStorage struct {
	calls     int
	failAfter int
	urls      []string
}

func (s *fakeStorage) Store(_ context.Context, blob []byte, meta ports.UploadMetadata) (string, error) {
	s.calls++
	if s.failAfter > 0 && s.calls >= s.failAfter {
		return "", ports.ErrStorageUnavailable
	}
	url := fmt.Sprintf("/uploads/%d-%s", s.calls, meta.Name)
	s.urls = append(s.urls, url)
	return url, nil
}

type fakePromptRepo struct {
	prompts map[string]*entities.Prompt
	nextID  int
	failing bool
}

func newFakePromptRepo() *fakePromptRepo {
	return &fakePromptRepo{prompts: make(map[string]*entities.Prompt)}
}

func (r *fakePromptRepo) Create(_ context.Context, prompt *entities.Prompt) error {
	if r.failing {
		return errors.New("db down")
	}
	r.nextID++
	prompt.ID = fmt.Sprintf("prompt-%d", r.nextID)
	clone := *prompt
	r.prompts[prompt.ID] = &clone
	return nil
}

func (r *fakePromptRepo) FindByID(_ context.Context, id string) (*entities.Prompt, error) {
	if r.failing {
		return nil, errors.New("db down")
	}
	prompt, ok := r.prompts[id]
	if !ok {
		return nil, nil
	}
	clone := *prompt
	return &clone, nil
}

func (r *fakePromptRepo) Update(_ context.Context, prompt *entities.Prompt) error {
	if r.failing {
		return errors.New("db down")
	}
	existing, ok := r.prompts[prompt.ID]
	if !ok {
		return errors.New("not found")
	}
	likes := existing.LikesCount
	clone := *prompt
	clone.LikesCount = likes // contador só muda via AdjustLikesCount
	r.prompts[prompt.ID] = &clone
	return nil
}

func (r *fakePromptRepo) Delete(_ context.Context, id string) error {
	delete(r.prompts, id)
	return nil
}

func (r *fakePromptRepo) List(_ context.Context, sortBy repositories.PromptSort) ([]*entities.Prompt, error) {
	result := make([]*entities.Prompt, 0, len(r.prompts))
	for _, p := range r.prompts {
		clone := *p
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool {
		if sortBy == repositories.SortPopular {
			return result[i].LikesCount > result[j].LikesCount
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakePromptRepo) ListByUser(_ context.Context, userID string) ([]*entities.Prompt, error) {
	result := make([]*entities.Prompt, 0)
	for _, p := range r.prompts {
		if p.UserID == userID {
			clone := *p
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakePromptRepo) ListLikedByUser(_ context.Context, userID string) ([]*entities.Prompt, error) {
	return nil, nil
}

func (r *fakePromptRepo) AdjustLikesCount(_ context.Context, id string, delta int) error {
	prompt, ok := r.prompts[id]
	if !ok {
		return errors.New("not found")
	}
	prompt.LikesCount += int64(delta)
	return nil
}

type fakeLikeRepo struct {
	likes  map[string]*entities.Like // por ID
	nextID int
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: make(map[string]*entities.Like)}
}

func (r *fakeLikeRepo) Create(_ context.Context, like *entities.Like) error {
	for _, l := range r.likes {
		if l.UserID == like.UserID && l.PromptID == like.PromptID {
			// simula o índice único composto
			return errors.New("unique constraint violation")
		}
	}
	r.nextID++
	like.ID = fmt.Sprintf("like-%d", r.nextID)
	clone := *like
	r.likes[like.ID] = &clone
	return nil
}

func (r *fakeLikeRepo) Delete(_ context.Context, id string) error {
	delete(r.likes, id)
	return nil
}

func (r *fakeLikeRepo) FindByUserAndPrompt(_ context.Context, userID, promptID string) (*entities.Like, error) {
	for _, l := range r.likes {
		if l.UserID == userID && l.PromptID == promptID {
			clone := *l
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeLikeRepo) DeleteByPrompt(_ context.Context, promptID string) error {
	for id, l := range r.likes {
		if l.PromptID == promptID {
			delete(r.likes, id)
		}
	}
	return nil
}

func (r *fakeLikeRepo) CountByPrompt(_ context.Context, promptID string) (int64, error) {
	var count int64
	for _, l := range r.likes {
		if l.PromptID == promptID {
			count++
		}
	}
	return count, nil
}

type fakeUserRepo struct {
	users map[string]*entities.User
	// blindLookup faz FindByEmail não enxergar nada, simulando a janela
	// entre a checagem de existência e o insert de um registro concorrente
	blindLookup bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	for _, u := range r.users {
		if u.Email.String() == user.Email.String() {
			// simula o índice único de email já traduzido
			return domainerrors.ErrEmailAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	if r.blindLookup {
		return nil, nil
	}
	for _, u := range r.users {
		if u.Email.String() == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

// fakeIssuer emite tokens previsíveis
type fakeIssuer struct{}

func (fakeIssuer) Issue(userID string) (string, error) {
	return "token-" + userID, nil
}

// newTestUser monta um usuário válido para os cenários de teste
func newTestUser(t *testing.T, address string) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail(address)
	if err != nil {
		t.Fatalf("email inválido: %v", err)
	}
	return &entities.User{Email: email}
}
