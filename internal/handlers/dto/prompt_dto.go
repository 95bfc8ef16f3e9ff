package dto

import (
	"time"

	"github.com/rafabene/promptdiff-backend/internal/services"
)

// AuthorResponse representa os campos de exibição do autor
type AuthorResponse struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// PromptResponse representa a resposta de um prompt
type PromptResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Title       string         `json:"title"`
	Prompt      string         `json:"prompt"`
	Model       string         `json:"model"`
	Params      string         `json:"params,omitempty"`
	BeforeImage string         `json:"before_image"`
	AfterImage  string         `json:"after_image"`
	Likes       int64          `json:"likes"`
	IsLiked     bool           `json:"is_liked"`
	Author      AuthorResponse `json:"author"`
	CreatedAt   time.Time      `json:"created_at"`
}

// ToggleLikeResponse representa o resultado do toggle de like
type ToggleLikeResponse struct {
	Liked    bool  `json:"liked"`
	NewCount int64 `json:"new_count"`
}

// ToPromptResponse converte um PromptView para PromptResponse
func ToPromptResponse(view *services.PromptView) PromptResponse {
	p := view.Prompt
	return PromptResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Title:       p.Title,
		Prompt:      p.PromptText,
		Model:       p.Model,
		Params:      p.Params,
		BeforeImage: p.BeforeImage,
		AfterImage:  p.AfterImage,
		Likes:       p.LikesCount,
		IsLiked:     view.ViewerHasLiked,
		Author: AuthorResponse{
			Name:   view.AuthorName,
			Avatar: view.AuthorAvatar,
		},
		CreatedAt: p.CreatedAt,
	}
}

// ToPromptResponses converte uma lista de PromptView
func ToPromptResponses(views []*services.PromptView) []PromptResponse {
	responses := make([]PromptResponse, len(views))
	for i, view := range views {
		responses[i] = ToPromptResponse(view)
	}
	return responses
}
