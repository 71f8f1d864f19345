package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type KeyStore interface {
	Set(apiKey string) error
}

// APIKeyHandler serves validating and saving the model API key.
type APIKeyHandler struct {
	store   KeyStore
	gateway ModelGateway
}

func NewAPIKeyHandler(store KeyStore, gateway ModelGateway) *APIKeyHandler {
	return &APIKeyHandler{store: store, gateway: gateway}
}

func (h *APIKeyHandler) Validate(c *gin.Context) {
	var req APIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{
			"valid":   false,
			"message": "❌ 검증 중 오류 발생",
			"details": err.Error(),
		})
		return
	}

	result := h.gateway.ValidateKey(c.Request.Context(), req.APIKey)
	c.JSON(http.StatusOK, result)
}

func (h *APIKeyHandler) Save(c *gin.Context) {
	var req APIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, SaveResponse{Success: false, Error: "요청 형식이 올바르지 않습니다."})
		return
	}

	if err := h.store.Set(req.APIKey); err != nil {
		slog.Error("failed to save api key", "error", err)
		c.JSON(http.StatusOK, SaveResponse{Success: false, Error: "저장 실패"})
		return
	}

	c.JSON(http.StatusOK, SaveResponse{Success: true})
}
