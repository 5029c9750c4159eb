package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/save-point/internal/domain"
	"github.com/iamasit07/save-point/internal/lib/logger/sl"
	"github.com/iamasit07/save-point/internal/service/game"
)

const (
	MsgInvalidCreate   = "Título e Horas (número positivo) são obrigatórios e devem ser válidos."
	MsgInvalidUpdate   = "Título não pode ser vazio e Horas deve ser um número positivo."
	MsgNoUpdateFields  = "Nenhum campo para atualizar fornecido."
	MsgNotFound        = "Jogo não encontrado."
	MsgNotFoundDelete  = "Jogo não encontrado para exclusão."
	MsgInternalFailure = "Erro interno do servidor."
)

type messageResponse struct {
	Message string `json:"message"`
}

type GameHandler struct {
	Service *game.Service
	log     *slog.Logger
}

func NewGameHandler(svc *game.Service, log *slog.Logger) *GameHandler {
	return &GameHandler{
		Service: svc,
		log:     log.With(slog.String("component", "transport/http")),
	}
}

func (h *GameHandler) Register(r gin.IRouter) {
	games := r.Group("/api/games")
	games.POST("", h.Create)
	games.GET("", h.List)
	games.PUT("/:id", h.Update)
	games.DELETE("/:id", h.Delete)
}

// Create handles POST /api/games
func (h *GameHandler) Create(c *gin.Context) {
	var req domain.CreateGameRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: MsgInvalidCreate})
		return
	}

	created, err := h.Service.Create(req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, messageResponse{Message: MsgInvalidCreate})
			return
		}
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List handles GET /api/games
func (h *GameHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List())
}

// Update handles PUT /api/games/:id. A missing body counts as an empty payload.
func (h *GameHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req domain.UpdateGameRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, messageResponse{Message: MsgInvalidUpdate})
		return
	}

	updated, err := h.Service.Update(id, req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, updated)
	case errors.Is(err, domain.ErrGameNotFound):
		c.JSON(http.StatusNotFound, messageResponse{Message: MsgNotFound})
	case errors.Is(err, domain.ErrNoUpdateFields):
		c.JSON(http.StatusBadRequest, messageResponse{Message: MsgNoUpdateFields})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, messageResponse{Message: MsgInvalidUpdate})
	default:
		h.internalError(c, err)
	}
}

// Delete handles DELETE /api/games/:id
func (h *GameHandler) Delete(c *gin.Context) {
	err := h.Service.Delete(c.Param("id"))
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, domain.ErrGameNotFound):
		c.JSON(http.StatusNotFound, messageResponse{Message: MsgNotFoundDelete})
	default:
		h.internalError(c, err)
	}
}

func (h *GameHandler) internalError(c *gin.Context, err error) {
	h.log.Error("request failed", sl.Err(err), slog.String("path", c.Request.URL.Path))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, messageResponse{Message: MsgInternalFailure})
}
