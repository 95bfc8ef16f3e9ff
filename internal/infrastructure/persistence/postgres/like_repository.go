package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/promptdiff-backend/internal/domain/entities"
	"github.com/rafabene/promptdiff-backend/internal/domain/repositories"
)

// LikeRepository implementa repositories.LikeRepository
type LikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository cria um novo LikeRepository
func NewLikeRepository(db *gorm.DB) repositories.LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Create(ctx context.Context, like *entities.Like) error {
	model := &LikeModel{
		ID:       like.ID,
		UserID:   like.UserID,
		PromptID: like.PromptID,
	}
	if !like.CreatedAt.IsZero() {
		model.CreatedAt = like.CreatedAt.Unix()
	}
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	like.ID = model.ID
	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	return db.Where("id = ?", id).Delete(&LikeModel{}).Error
}

func (r *LikeRepository) FindByUserAndPrompt(ctx context.Context, userID, promptID string) (*entities.Like, error) {
	var model LikeModel

	db := r.getDB(ctx)
	if err := db.Where("user_id = ? AND prompt_id = ?", userID, promptID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.Like{
		ID:        model.ID,
		UserID:    model.UserID,
		PromptID:  model.PromptID,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}, nil
}

func (r *LikeRepository) DeleteByPrompt(ctx context.Context, promptID string) error {
	db := r.getDB(ctx)
	return db.Where("prompt_id = ?", promptID).Delete(&LikeModel{}).Error
}

func (r *LikeRepository) CountByPrompt(ctx context.Context, promptID string) (int64, error) {
	var count int64

	db := r.getDB(ctx)
	if err := db.Model(&LikeModel{}).
		Where("prompt_id = ?", promptID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *LikeRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}
