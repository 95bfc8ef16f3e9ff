package http

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/promptdiff-backend/internal/domain/repositories"
	"github.com/rafabene/promptdiff-backend/internal/handlers/dto"
	"github.com/rafabene/promptdiff-backend/internal/handlers/middleware"
	"github.com/rafabene/promptdiff-backend/internal/services"
)

// PromptHandler lida com requisições HTTP relacionadas a prompts
type PromptHandler struct {
	promptService *services.PromptService
	likeService   *services.LikeService
	queryService  *services.QueryService
}

// NewPromptHandler cria um novo PromptHandler
func NewPromptHandler(
	promptService *services.PromptService,
	likeService *services.LikeService,
	queryService *services.QueryService,
) *PromptHandler {
	return &PromptHandler{
		promptService: promptService,
		likeService:   likeService,
		queryService:  queryService,
	}
}

// CreatePrompt publica uma nova comparação antes/depois
//
//	@Summary	Publica um prompt
//	@Tags		prompts
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		title		formData	string	false	"Título"
//	@Param		prompt		formData	string	true	"Texto do prompt"
//	@Param		model		formData	string	false	"Modelo de IA"
//	@Param		params		formData	string	false	"Parâmetros livres"
//	@Param		beforeImage	formData	file	true	"Imagem antes"
//	@Param		afterImage	formData	file	true	"Imagem depois"
//	@Success	201	{object}	dto.PromptResponse
//	@Failure	400	{object}	problems.Problem
//	@Failure	401	{object}	problems.Problem
//	@Security	BearerAuth
//	@Router		/prompts [post]
func (h *PromptHandler) CreatePrompt(c *gin.Context) {
	callerID := middleware.CallerID(c)

	input := services.PromptInput{
		Title:      c.PostForm("title"),
		PromptText: c.PostForm("prompt"),
		Model:      c.PostForm("model"),
		Params:     c.PostForm("params"),
	}

	before, err := formUpload(c, "beforeImage")
	if err != nil {
		dto.ValidationProblem(c)
		return
	}
	after, err := formUpload(c, "afterImage")
	if err != nil {
		dto.ValidationProblem(c)
		return
	}

	prompt, err := h.promptService.CreatePrompt(c.Request.Context(), callerID, input, before, after)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	view, err := h.queryService.GetPromptByID(c.Request.Context(), prompt.ID, callerID)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPromptResponse(view))
}

// UpdatePrompt edita um prompt do próprio usuário
//
//	@Summary	Atualiza um prompt
//	@Tags		prompts
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id			path		string	true	"ID do prompt"
//	@Param		title		formData	string	false	"Título"
//	@Param		prompt		formData	string	false	"Texto do prompt"
//	@Param		model		formData	string	false	"Modelo de IA"
//	@Param		params		formData	string	false	"Parâmetros livres"
//	@Param		beforeImage	formData	file	false	"Nova imagem antes"
//	@Param		afterImage	formData	file	false	"Nova imagem depois"
//	@Success	200	{object}	dto.PromptResponse
//	@Failure	403	{object}	problems.Problem
//	@Failure	404	{object}	problems.Problem
//	@Security	BearerAuth
//	@Router		/prompts/{id} [put]
func (h *PromptHandler) UpdatePrompt(c *gin.Context) {
	callerID := middleware.CallerID(c)
	promptID := c.Param("id")

	input := services.PromptInput{
		Title:      c.PostForm("title"),
		PromptText: c.PostForm("prompt"),
		Model:      c.PostForm("model"),
		Params:     c.PostForm("params"),
	}

	before, err := formUpload(c, "beforeImage")
	if err != nil {
		dto.ValidationProblem(c)
		return
	}
	after, err := formUpload(c, "afterImage")
	if err != nil {
		dto.ValidationProblem(c)
		return
	}

	if _, err := h.promptService.UpdatePrompt(c.Request.Context(), promptID, callerID, input, before, after); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	view, err := h.queryService.GetPromptByID(c.Request.Context(), promptID, callerID)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPromptResponse(view))
}

// DeletePrompt exclui um prompt do próprio usuário
//
//	@Summary	Exclui um prompt
//	@Tags		prompts
//	@Produce	json
//	@Param		id	path	string	true	"ID do prompt"
//	@Success	204
//	@Failure	403	{object}	problems.Problem
//	@Failure	404	{object}	problems.Problem
//	@Security	BearerAuth
//	@Router		/prompts/{id} [delete]
func (h *PromptHandler) DeletePrompt(c *gin.Context) {
	callerID := middleware.CallerID(c)
	promptID := c.Param("id")

	if err := h.promptService.DeletePrompt(c.Request.Context(), promptID, callerID); err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleLike alterna o like do chamador sobre o prompt
//
//	@Summary	Curte/descurte um prompt
//	@Tags		prompts
//	@Produce	json
//	@Param		id	path	string	true	"ID do prompt"
//	@Success	200	{object}	dto.ToggleLikeResponse
//	@Failure	401	{object}	problems.Problem
//	@Failure	404	{object}	problems.Problem
//	@Security	BearerAuth
//	@Router		/prompts/{id}/like [post]
func (h *PromptHandler) ToggleLike(c *gin.Context) {
	callerID := middleware.CallerID(c)
	promptID := c.Param("id")

	result, err := h.likeService.Toggle(c.Request.Context(), promptID, callerID)
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToggleLikeResponse{
		Liked:    result.Liked,
		NewCount: result.NewCount,
	})
}

// GetPrompt busca um prompt por ID
//
//	@Summary	Detalhe de um prompt
//	@Tags		prompts
//	@Produce	json
//	@Param		id	path	string	true	"ID do prompt"
//	@Success	200	{object}	dto.PromptResponse
//	@Failure	404	{object}	problems.Problem
//	@Router		/prompts/{id} [get]
func (h *PromptHandler) GetPrompt(c *gin.Context) {
	view, err := h.queryService.GetPromptByID(c.Request.Context(), c.Param("id"), middleware.CallerID(c))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPromptResponse(view))
}

// ListPrompts lista prompts por recência ou popularidade
//
//	@Summary	Lista prompts
//	@Tags		prompts
//	@Produce	json
//	@Param		sort	query	string	false	"Ordenação: recent | popular"
//	@Success	200	{array}	dto.PromptResponse
//	@Router		/prompts [get]
func (h *PromptHandler) ListPrompts(c *gin.Context) {
	sort := repositories.SortRecent
	if c.Query("sort") == string(repositories.SortPopular) {
		sort = repositories.SortPopular
	}

	views, err := h.queryService.ListPrompts(c.Request.Context(), sort, middleware.CallerID(c))
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPromptResponses(views))
}

// formUpload lê um arquivo multipart opcional. Campo ausente retorna
// (nil, nil); o obrigatório ou não é decidido no service.
func formUpload(c *gin.Context, field string) (*services.Upload, error) {
	header, err := c.FormFile(field)
	if err == http.ErrMissingFile || err == http.ErrNotMultipart {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, nil
	}

	return readUpload(header)
}

func readUpload(header *multipart.FileHeader) (*services.Upload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &services.Upload{
		Data:        data,
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}
