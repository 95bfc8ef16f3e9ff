package dto

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/promptdiff-backend/internal/domain/errors"
)

// NewProblem cria um problema RFC 7807 (Problem Details for HTTP APIs)
// com título e detalhe traduzidos via i18n
func NewProblem(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) *problems.Problem {
	// Pegar base URL da configuração
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &problems.Problem{
		Type:     baseURL + problemType,
		Title:    T(c, titleKey, params...),
		Status:   status,
		Detail:   T(c, detailKey, params...),
		Instance: c.Request.URL.Path,
	}
}

// RespondProblem escreve o problema com o media type RFC 7807
func RespondProblem(c *gin.Context, problem *problems.Problem) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(problem.Status, problem)
}

// RespondDomainError mapeia um erro de domínio para o problema HTTP
// correspondente. Todo erro que chega aqui vira uma resposta tagueada
// com mensagem legível — nada propaga como pânico pela borda da API.
func RespondDomainError(c *gin.Context, err error) {
	var (
		problemType = errors.ProblemTypeInternal
		titleKey    = "error.internal.title"
		status      = http.StatusInternalServerError
	)

	switch {
	case stderrors.Is(err, errors.ErrUnauthenticated):
		problemType, titleKey, status = errors.ProblemTypeUnauthorized, "error.unauthorized.title", http.StatusUnauthorized
	case stderrors.Is(err, errors.ErrInvalidCredentials):
		problemType, titleKey, status = errors.ProblemTypeUnauthorized, "error.unauthorized.title", http.StatusUnauthorized
	case stderrors.Is(err, errors.ErrForbidden):
		problemType, titleKey, status = errors.ProblemTypeForbidden, "error.forbidden.title", http.StatusForbidden
	case stderrors.Is(err, errors.ErrPromptNotFound), stderrors.Is(err, errors.ErrUserNotFound):
		problemType, titleKey, status = errors.ProblemTypeNotFound, "error.not_found.title", http.StatusNotFound
	case stderrors.Is(err, errors.ErrEmailAlreadyExists):
		problemType, titleKey, status = errors.ProblemTypeConflict, "error.conflict.title", http.StatusConflict
	case stderrors.Is(err, errors.ErrValidation):
		problemType, titleKey, status = errors.ProblemTypeValidation, "error.validation.title", http.StatusBadRequest
	case stderrors.Is(err, errors.ErrStorageFailure):
		problemType, titleKey, status = errors.ProblemTypeStorage, "error.storage.title", http.StatusBadGateway
	case stderrors.Is(err, errors.ErrPersistenceFailure):
		problemType, titleKey, status = errors.ProblemTypeInternal, "error.internal.title", http.StatusInternalServerError
	}

	// A mensagem dos erros sentinela é a própria chave i18n do detalhe
	RespondProblem(c, NewProblem(c, problemType, titleKey, err.Error(), status))
}

// ValidationProblem é o atalho para erros de binding/validação
func ValidationProblem(c *gin.Context) {
	RespondProblem(c, NewProblem(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	))
}
