package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aroundhq/aroundb/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type cardUsecaser interface {
	List(ctx context.Context) ([]*domain.Card, error)
	Create(ctx context.Context, ownerID, name, link string) (*domain.Card, error)
	Delete(ctx context.Context, cardID, requesterID string) (*domain.Card, error)
	Like(ctx context.Context, cardID, userID string) (*domain.Card, error)
	Unlike(ctx context.Context, cardID, userID string) (*domain.Card, error)
}

type CardHandler struct {
	cardUsecase cardUsecaser
	logger      *slog.Logger
}

func NewCardHandler(cardUsecase cardUsecaser, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		cardUsecase: cardUsecase,
		logger:      logger.With("component", "card_handler"),
	}
}

type createCardRequest struct {
	Name string `json:"name" binding:"required,min=2,max=30"`
	Link string `json:"link" binding:"required,url"`
}

type cardResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCardResponse(card *domain.Card) cardResponse {
	likes := card.Likes
	if likes == nil {
		likes = []string{}
	}
	return cardResponse{
		ID:        card.ID,
		Name:      card.Name,
		Link:      card.Link,
		Owner:     card.OwnerID,
		Likes:     likes,
		CreatedAt: card.CreatedAt,
	}
}

// cardID validates the :cardId path param. A malformed id is a 400, kept
// distinct from the 404 of a well-formed id that matches nothing.
func (h *CardHandler) cardID(c *gin.Context) (string, bool) {
	id := c.Param("cardId")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidID})
		return "", false
	}
	return id, true
}

// GET /cards, newest first.
func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.cardUsecase.List(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list cards", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	resp := make([]cardResponse, 0, len(cards))
	for _, card := range cards {
		resp = append(resp, toCardResponse(card))
	}
	c.JSON(http.StatusOK, resp)
}

// POST /cards. The owner is always the authenticated user.
func (h *CardHandler) Create(c *gin.Context) {
	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	card, err := h.cardUsecase.Create(c.Request.Context(), c.GetString("userID"), req.Name, req.Link)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "create card", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	c.JSON(http.StatusCreated, toCardResponse(card))
}

// DELETE /cards/:cardId, owner only. 404 for a missing card, 403 for
// someone else's card.
func (h *CardHandler) Delete(c *gin.Context) {
	id, ok := h.cardID(c)
	if !ok {
		return
	}

	card, err := h.cardUsecase.Delete(c.Request.Context(), id, c.GetString("userID"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": errCardNotFound})
		case errors.Is(err, domain.ErrNotCardOwner):
			c.JSON(http.StatusForbidden, gin.H{"message": errNotCardOwner})
		default:
			h.logger.ErrorContext(c.Request.Context(), "delete card", "card_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card removed", "card": toCardResponse(card)})
}

// PUT|POST /cards/:cardId/likes, an idempotent add-to-set.
func (h *CardHandler) Like(c *gin.Context) {
	h.toggleLike(c, h.cardUsecase.Like, "like card")
}

// DELETE /cards/:cardId/likes, an idempotent remove-from-set.
func (h *CardHandler) Unlike(c *gin.Context) {
	h.toggleLike(c, h.cardUsecase.Unlike, "unlike card")
}

func (h *CardHandler) toggleLike(c *gin.Context, op func(ctx context.Context, cardID, userID string) (*domain.Card, error), what string) {
	id, ok := h.cardID(c)
	if !ok {
		return
	}

	card, err := op(c.Request.Context(), id, c.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": errCardNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), what, "card_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toCardResponse(card))
}
