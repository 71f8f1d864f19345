package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"newschat/internal/model"
	"newschat/pkg/llm"
	"newschat/pkg/news"
	"newschat/pkg/snippet"
)

const searchMaxResults = 10

type NewsSearcher interface {
	Search(ctx context.Context, keyword string, maxResults int) ([]news.Article, error)
}

type ModelGateway interface {
	Summarize(ctx context.Context, articles []llm.Article) (string, error)
	Chat(ctx context.Context, articles []llm.Article, message string) (string, error)
	ValidateKey(ctx context.Context, candidate string) llm.ValidationResult
}

// NewsHandler serves the search, summarize and chat operations.
type NewsHandler struct {
	searcher NewsSearcher
	gateway  ModelGateway
}

func NewNewsHandler(searcher NewsSearcher, gateway ModelGateway) *NewsHandler {
	return &NewsHandler{searcher: searcher, gateway: gateway}
}

func (h *NewsHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, ErrorResponse{Error: true, Message: "요청 형식이 올바르지 않습니다.", Details: err.Error()})
		return
	}

	keyword := strings.TrimSpace(req.Keyword)
	if keyword == "" {
		c.JSON(http.StatusOK, ErrorResponse{Error: true, Message: "키워드가 입력되지 않았습니다."})
		return
	}

	fetched, err := h.searcher.Search(c.Request.Context(), keyword, searchMaxResults)
	if err != nil {
		slog.Error("news search failed", "keyword", keyword, "error", err)
		c.JSON(http.StatusOK, fetchErrorResponse(err))
		return
	}

	articles := make([]model.Article, 0, len(fetched))
	for _, a := range fetched {
		articles = append(articles, model.Article{
			Title:        a.Title,
			Link:         a.Link,
			Summary:      a.Summary,
			SummaryShort: snippet.ShortSummary(a.Summary, 2),
			Published:    a.Published,
		})
	}

	c.JSON(http.StatusOK, SearchResponse{Error: false, Articles: articles})
}

// fetchErrorResponse translates the feed client's failure kinds into the
// user-facing messages.
func fetchErrorResponse(err error) ErrorResponse {
	var fe *news.FetchError
	if !errors.As(err, &fe) {
		return ErrorResponse{
			Error:   true,
			Message: fmt.Sprintf("뉴스를 불러오는 중 오류가 발생했습니다: %v", err),
			Details: "네트워크 연결을 확인하거나 잠시 후 다시 시도해주세요.",
		}
	}

	switch fe.Kind {
	case news.KindTimeout:
		return ErrorResponse{
			Error:   true,
			Message: "네트워크 요청 시간이 초과되었습니다.",
			Details: "인터넷 연결을 확인하거나 잠시 후 다시 시도해주세요.",
		}
	case news.KindConnection:
		return ErrorResponse{
			Error:   true,
			Message: "인터넷 연결에 실패했습니다.",
			Details: "인터넷 연결 상태를 확인해주세요.",
		}
	case news.KindParse:
		return ErrorResponse{
			Error:   true,
			Message: "뉴스 데이터를 파싱하는 중 오류가 발생했습니다.",
			Details: fe.Err.Error(),
		}
	default:
		return ErrorResponse{
			Error:   true,
			Message: fmt.Sprintf("뉴스를 불러오는 중 오류가 발생했습니다: %v", fe.Err),
			Details: "네트워크 연결을 확인하거나 잠시 후 다시 시도해주세요.",
		}
	}
}

func (h *NewsHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, ErrorResponse{Error: true, Message: "요청 형식이 올바르지 않습니다.", Details: err.Error()})
		return
	}

	if len(req.Articles) == 0 {
		c.JSON(http.StatusOK, ErrorResponse{Error: true, Message: "뉴스가 없습니다."})
		return
	}

	summary, err := h.gateway.Summarize(c.Request.Context(), toPromptArticles(req.Articles))
	if err != nil {
		slog.Error("summarize failed", "articles", len(req.Articles), "error", err)
		c.JSON(http.StatusOK, gatewayErrorResponse(err, "요약 생성 중 오류가 발생했습니다"))
		return
	}

	c.JSON(http.StatusOK, SummarizeResponse{Error: false, Summary: summary})
}

func (h *NewsHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, ErrorResponse{Error: true, Message: "요청 형식이 올바르지 않습니다.", Details: err.Error()})
		return
	}

	if len(req.Articles) == 0 {
		c.JSON(http.StatusOK, ErrorResponse{Error: true, Message: "뉴스가 없습니다."})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusOK, ErrorResponse{Error: true, Message: "메시지가 없습니다."})
		return
	}

	answer, err := h.gateway.Chat(c.Request.Context(), toPromptArticles(req.Articles), req.Message)
	if err != nil {
		slog.Error("chat failed", "articles", len(req.Articles), "error", err)
		c.JSON(http.StatusOK, gatewayErrorResponse(err, "대화 생성 중 오류가 발생했습니다"))
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Error: false, Response: answer})
}

// toPromptArticles prefers the raw feed summary, falling back to the short
// heuristic snippet when that is all the client sent back.
func toPromptArticles(articles []model.Article) []llm.Article {
	out := make([]llm.Article, 0, len(articles))
	for _, a := range articles {
		summary := a.Summary
		if summary == "" {
			summary = a.SummaryShort
		}
		out = append(out, llm.Article{
			Title:     a.Title,
			Summary:   summary,
			Published: a.Published,
		})
	}
	return out
}

func gatewayErrorResponse(err error, prefix string) ErrorResponse {
	switch {
	case errors.Is(err, llm.ErrNoCredential):
		return ErrorResponse{
			Error:   true,
			Message: "API 키가 설정되지 않았습니다.",
			Details: "상단에서 API 키를 입력하고 검증해주세요.",
		}
	case errors.Is(err, llm.ErrNoArticles):
		return ErrorResponse{Error: true, Message: "뉴스가 없습니다."}
	case errors.Is(err, llm.ErrEmptyMessage):
		return ErrorResponse{Error: true, Message: "메시지가 없습니다."}
	default:
		return ErrorResponse{
			Error:   true,
			Message: fmt.Sprintf("%s: %v", prefix, err),
			Details: "API 키가 유효한지 확인하거나 잠시 후 다시 시도해주세요.",
		}
	}
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
