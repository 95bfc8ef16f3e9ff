package services

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/promptdiff-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/promptdiff-backend/internal/domain/errors"
)

var _ = Describe("LikeService", func() {
	var (
		ctx        context.Context
		promptRepo *fakePromptRepo
		likeRepo   *fakeLikeRepo
		uow        *fakeUnitOfWork
		svc        *LikeService
		promptID   string
	)

	BeforeEach(func() {
		ctx = context.Background()
		promptRepo = newFakePromptRepo()
		likeRepo = newFakeLikeRepo()
		uow = &fakeUnitOfWork{}
		svc = NewLikeService(likeRepo, promptRepo, uow, noopLogger{})

		prompt := &entities.Prompt{
			UserID:      "owner",
			PromptText:  "A cat in space",
			BeforeImage: "/uploads/before.png",
			AfterImage:  "/uploads/after.png",
		}
		Expect(promptRepo.Create(ctx, prompt)).To(Succeed())
		promptID = prompt.ID
	})

	Describe("Toggle", func() {
		It("cria o like e incrementa o contador na primeira chamada", func() {
			result, err := svc.Toggle(ctx, promptID, "user-b")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Liked).To(BeTrue())
			Expect(result.NewCount).To(Equal(int64(1)))

			count, _ := likeRepo.CountByPrompt(ctx, promptID)
			Expect(count).To(Equal(int64(1)))
			Expect(uow.commits).To(Equal(1))
		})

		It("volta ao estado original após o toggle duplo", func() {
			_, err := svc.Toggle(ctx, promptID, "user-b")
			Expect(err).NotTo(HaveOccurred())

			result, err := svc.Toggle(ctx, promptID, "user-b")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Liked).To(BeFalse())
			Expect(result.NewCount).To(Equal(int64(0)))

			count, _ := likeRepo.CountByPrompt(ctx, promptID)
			Expect(count).To(BeZero())
		})

		It("mantém o contador igual ao número de linhas de Like para N usuários", func() {
			const n = 7
			for i := 0; i < n; i++ {
				result, err := svc.Toggle(ctx, promptID, fmt.Sprintf("user-%d", i))
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Liked).To(BeTrue())
			}

			prompt, _ := promptRepo.FindByID(ctx, promptID)
			count, _ := likeRepo.CountByPrompt(ctx, promptID)
			Expect(prompt.LikesCount).To(Equal(int64(n)))
			Expect(count).To(Equal(int64(n)))
		})

		It("rejeita chamador anônimo", func() {
			_, err := svc.Toggle(ctx, promptID, "")
			Expect(err).To(MatchError(domainerrors.ErrUnauthenticated))
			Expect(uow.commits).To(BeZero())
		})

		It("rejeita prompt inexistente", func() {
			_, err := svc.Toggle(ctx, "missing", "user-b")
			Expect(err).To(MatchError(domainerrors.ErrPromptNotFound))
		})
	})
})
