package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/promptdiff-backend/internal/handlers/dto"
	"github.com/rafabene/promptdiff-backend/internal/handlers/middleware"
	"github.com/rafabene/promptdiff-backend/internal/services"
)

// UserHandler lida com o perfil e as listagens do próprio usuário
type UserHandler struct {
	userService  *services.UserService
	queryService *services.QueryService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, queryService *services.QueryService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		queryService: queryService,
	}
}

// UpdateProfile atualiza nome e avatar do próprio usuário
//
//	@Summary	Atualiza o perfil
//	@Tags		users
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		name	formData	string	false	"Nome de exibição"
//	@Param		avatar	formData	file	false	"Novo avatar"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	401	{object}	problems.Problem
//	@Security	BearerAuth
//	@Router		/users/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	callerID := middleware.CallerID(c)

	avatar, err := formUpload(c, "avatar")
	if err != nil {
		dto.ValidationProblem(c)
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), callerID, c.PostForm("name"), avatar)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// MyPrompts lista os prompts publicados pelo chamador
//
//	@Summary	Meus prompts
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}	dto.PromptResponse
//	@Failure	401	{object}	problems.Problem
//	@Security	BearerAuth
//	@Router		/users/me/prompts [get]
func (h *UserHandler) MyPrompts(c *gin.Context) {
	views, err := h.queryService.ListUserPrompts(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPromptResponses(views))
}

// LikedPrompts lista os prompts curtidos pelo chamador
//
//	@Summary	Prompts curtidos
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}	dto.PromptResponse
//	@Failure	401	{object}	problems.Problem
//	@Security	BearerAuth
//	@Router		/users/me/likes [get]
func (h *UserHandler) LikedPrompts(c *gin.Context) {
	views, err := h.queryService.ListLikedPrompts(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPromptResponses(views))
}
