package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rafabene/promptdiff-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/promptdiff-backend/internal/domain/errors"
	"github.com/rafabene/promptdiff-backend/internal/domain/repositories"
)

func TestQueryService_GetPromptByID(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*QueryService, *fakePromptRepo, *fakeLikeRepo, *fakeUserRepo) {
		t.Helper()
		promptRepo := newFakePromptRepo()
		likeRepo := newFakeLikeRepo()
		userRepo := newFakeUserRepo()
		svc := NewQueryService(promptRepo, likeRepo, userRepo, noopLogger{})
		return svc, promptRepo, likeRepo, userRepo
	}

	t.Run("monta a view com os dados do autor", func(t *testing.T) {
		svc, promptRepo, _, userRepo := setup(t)

		author := newTestUser(t, "marie@example.com")
		author.Name = "Marie"
		avatar := "https://example.com/marie.png"
		author.AvatarURL = &avatar
		if err := userRepo.Create(ctx, author); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		prompt := &entities.Prompt{UserID: author.ID, PromptText: "texto", BeforeImage: "b", AfterImage: "a"}
		if err := promptRepo.Create(ctx, prompt); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		view, err := svc.GetPromptByID(ctx, prompt.ID, "")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if view.AuthorName != "Marie" || view.AuthorAvatar != avatar {
			t.Errorf("dados do autor incorretos: %q / %q", view.AuthorName, view.AuthorAvatar)
		}
		if view.ViewerHasLiked {
			t.Error("visitante anônimo nunca tem ViewerHasLiked")
		}
	})

	t.Run("usa placeholders quando o autor não existe mais", func(t *testing.T) {
		svc, promptRepo, _, _ := setup(t)

		prompt := &entities.Prompt{UserID: "ghost", PromptText: "texto", BeforeImage: "b", AfterImage: "a"}
		if err := promptRepo.Create(ctx, prompt); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		view, err := svc.GetPromptByID(ctx, prompt.ID, "")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if view.AuthorName != entities.DefaultDisplayName {
			t.Errorf("esperava %q, obteve %q", entities.DefaultDisplayName, view.AuthorName)
		}
		if view.AuthorAvatar != entities.DefaultAvatarURL {
			t.Errorf("esperava %q, obteve %q", entities.DefaultAvatarURL, view.AuthorAvatar)
		}
	})

	t.Run("marca ViewerHasLiked para o viewer que curtiu", func(t *testing.T) {
		svc, promptRepo, likeRepo, _ := setup(t)

		prompt := &entities.Prompt{UserID: "owner", PromptText: "texto", BeforeImage: "b", AfterImage: "a"}
		if err := promptRepo.Create(ctx, prompt); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if err := likeRepo.Create(ctx, &entities.Like{UserID: "fan", PromptID: prompt.ID}); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		view, err := svc.GetPromptByID(ctx, prompt.ID, "fan")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if !view.ViewerHasLiked {
			t.Error("esperava ViewerHasLiked para quem curtiu")
		}

		view, err = svc.GetPromptByID(ctx, prompt.ID, "other")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if view.ViewerHasLiked {
			t.Error("não esperava ViewerHasLiked para quem não curtiu")
		}
	})

	t.Run("retorna ErrPromptNotFound para ID desconhecido", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		_, err := svc.GetPromptByID(ctx, "missing", "")
		if !errors.Is(err, domainerrors.ErrPromptNotFound) {
			t.Errorf("esperava ErrPromptNotFound, obteve %v", err)
		}
	})
}

func TestQueryService_ListPrompts(t *testing.T) {
	ctx := context.Background()

	t.Run("popularidade ordena pelo contador desnormalizado", func(t *testing.T) {
		promptRepo := newFakePromptRepo()
		svc := NewQueryService(promptRepo, newFakeLikeRepo(), newFakeUserRepo(), noopLogger{})

		first := &entities.Prompt{UserID: "owner", PromptText: "texto", BeforeImage: "b", AfterImage: "a"}
		second := &entities.Prompt{UserID: "owner", PromptText: "texto", BeforeImage: "b", AfterImage: "a"}
		for _, p := range []*entities.Prompt{first, second} {
			if err := promptRepo.Create(ctx, p); err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
		}
		if err := promptRepo.AdjustLikesCount(ctx, second.ID, 5); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		views, err := svc.ListPrompts(ctx, repositories.SortPopular, "")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(views) != 2 || views[0].Prompt.ID != second.ID {
			t.Errorf("esperava o prompt mais curtido primeiro")
		}
	})
}

func TestQueryService_ListLikedPrompts(t *testing.T) {
	t.Run("exige chamador autenticado", func(t *testing.T) {
		svc := NewQueryService(newFakePromptRepo(), newFakeLikeRepo(), newFakeUserRepo(), noopLogger{})

		_, err := svc.ListLikedPrompts(context.Background(), "")
		if !errors.Is(err, domainerrors.ErrUnauthenticated) {
			t.Errorf("esperava ErrUnauthenticated, obteve %v", err)
		}
	})
}
