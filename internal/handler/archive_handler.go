package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"newschat/internal/model"
)

type ArchiveStore interface {
	Append(keyword string, articles []model.Article) error
	LoadAll() []model.SearchRecord
}

// ArchiveHandler serves saving a search and listing saved searches.
type ArchiveHandler struct {
	store ArchiveStore
}

func NewArchiveHandler(store ArchiveStore) *ArchiveHandler {
	return &ArchiveHandler{store: store}
}

func (h *ArchiveHandler) Save(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, SaveResponse{Success: false, Error: "요청 형식이 올바르지 않습니다."})
		return
	}

	if req.Keyword == "" || len(req.Articles) == 0 {
		c.JSON(http.StatusOK, SaveResponse{Success: false, Error: "키워드 또는 뉴스가 없습니다."})
		return
	}

	// The archive keeps the raw summary; fall back to the short snippet
	// when that is all the client sent back.
	articles := make([]model.Article, 0, len(req.Articles))
	for _, a := range req.Articles {
		summary := a.Summary
		if summary == "" {
			summary = a.SummaryShort
		}
		articles = append(articles, model.Article{
			Title:     a.Title,
			Link:      a.Link,
			Summary:   summary,
			Published: a.Published,
		})
	}

	if err := h.store.Append(req.Keyword, articles); err != nil {
		slog.Error("failed to save search", "keyword", req.Keyword, "error", err)
		c.JSON(http.StatusOK, SaveResponse{Success: false, Error: "저장 실패"})
		return
	}

	c.JSON(http.StatusOK, SaveResponse{Success: true})
}

func (h *ArchiveHandler) Saved(c *gin.Context) {
	records := h.store.LoadAll()
	if records == nil {
		records = []model.SearchRecord{}
	}
	c.JSON(http.StatusOK, SavedResponse{Success: true, SavedNews: records})
}
