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

// PromptRepository implementa repositories.PromptRepository
type PromptRepository struct {
	db *gorm.DB
}

// NewPromptRepository cria um novo PromptRepository
func NewPromptRepository(db *gorm.DB) repositories.PromptRepository {
	return &PromptRepository{db: db}
}

func (r *PromptRepository) Create(ctx context.Context, prompt *entities.Prompt) error {
	model := r.toModel(prompt)
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	prompt.ID = model.ID
	prompt.CreatedAt = time.Unix(model.CreatedAt, 0)
	return nil
}

func (r *PromptRepository) FindByID(ctx context.Context, id string) (*entities.Prompt, error) {
	var model PromptModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

// Update persiste os campos editáveis do prompt. LikesCount fica de
// fora: o contador só muda via AdjustLikesCount, dentro da transação do
// toggle, para não sobrescrever incrementos concorrentes.
func (r *PromptRepository) Update(ctx context.Context, prompt *entities.Prompt) error {
	db := r.getDB(ctx)
	return db.Model(&PromptModel{}).
		Where("id = ?", prompt.ID).
		Updates(map[string]any{
			"title":        prompt.Title,
			"prompt_text":  prompt.PromptText,
			"model":        prompt.Model,
			"params":       prompt.Params,
			"before_image": prompt.BeforeImage,
			"after_image":  prompt.AfterImage,
			"updated_at":   time.Now().Unix(),
		}).Error
}

func (r *PromptRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	return db.Where("id = ?", id).Delete(&PromptModel{}).Error
}

func (r *PromptRepository) List(ctx context.Context, sort repositories.PromptSort) ([]*entities.Prompt, error) {
	var models []*PromptModel

	db := r.getDB(ctx)
	query := db.Model(&PromptModel{})

	switch sort {
	case repositories.SortPopular:
		query = query.Order("likes_count DESC").Order("created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PromptRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Prompt, error) {
	var models []*PromptModel

	db := r.getDB(ctx)
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PromptRepository) ListLikedByUser(ctx context.Context, userID string) ([]*entities.Prompt, error) {
	var models []*PromptModel

	db := r.getDB(ctx)
	if err := db.Model(&PromptModel{}).
		Joins("JOIN likes ON likes.prompt_id = prompts.id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// AdjustLikesCount aplica o delta direto no banco, com expressão
// atômica. Um read-modify-write na aplicação perderia incrementos sob
// togglers concorrentes.
func (r *PromptRepository) AdjustLikesCount(ctx context.Context, id string, delta int) error {
	db := r.getDB(ctx)
	return db.Model(&PromptModel{}).
		Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count + ?", delta)).
		Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *PromptRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *PromptRepository) toModel(prompt *entities.Prompt) *PromptModel {
	model := &PromptModel{
		ID:          prompt.ID,
		UserID:      prompt.UserID,
		Title:       prompt.Title,
		PromptText:  prompt.PromptText,
		Model:       prompt.Model,
		Params:      prompt.Params,
		BeforeImage: prompt.BeforeImage,
		AfterImage:  prompt.AfterImage,
		LikesCount:  prompt.LikesCount,
	}
	// Timestamps zerados ficam a cargo do autoCreateTime/autoUpdateTime
	if !prompt.CreatedAt.IsZero() {
		model.CreatedAt = prompt.CreatedAt.Unix()
	}
	if !prompt.UpdatedAt.IsZero() {
		model.UpdatedAt = prompt.UpdatedAt.Unix()
	}
	return model
}

func (r *PromptRepository) toEntity(model *PromptModel) *entities.Prompt {
	return &entities.Prompt{
		ID:          model.ID,
		UserID:      model.UserID,
		Title:       model.Title,
		PromptText:  model.PromptText,
		Model:       model.Model,
		Params:      model.Params,
		BeforeImage: model.BeforeImage,
		AfterImage:  model.AfterImage,
		LikesCount:  model.LikesCount,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}
}

func (r *PromptRepository) toEntities(models []*PromptModel) []*entities.Prompt {
	result := make([]*entities.Prompt, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
