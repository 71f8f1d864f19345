package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"newschat/internal/model"
	"newschat/pkg/llm"
	"newschat/pkg/news"
)

type fakeSearcher struct {
	articles   []news.Article
	err        error
	gotKeyword string
	gotMax     int
}

func (f *fakeSearcher) Search(ctx context.Context, keyword string, maxResults int) ([]news.Article, error) {
	f.gotKeyword = keyword
	f.gotMax = maxResults
	return f.articles, f.err
}

type fakeGateway struct {
	summary    string
	answer     string
	validation llm.ValidationResult
	err        error

	summarizeCalls int
	chatCalls      int
	gotArticles    []llm.Article
	gotMessage     string
	gotCandidate   string
}

func (f *fakeGateway) Summarize(ctx context.Context, articles []llm.Article) (string, error) {
	f.summarizeCalls++
	f.gotArticles = articles
	return f.summary, f.err
}

func (f *fakeGateway) Chat(ctx context.Context, articles []llm.Article, message string) (string, error) {
	f.chatCalls++
	f.gotArticles = articles
	f.gotMessage = message
	return f.answer, f.err
}

func (f *fakeGateway) ValidateKey(ctx context.Context, candidate string) llm.ValidationResult {
	f.gotCandidate = candidate
	return f.validation
}

func newTestRouter(searcher NewsSearcher, gateway ModelGateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNewsHandler(searcher, gateway)
	r.POST("/search", h.Search)
	r.POST("/summarize", h.Summarize)
	r.POST("/chat", h.Chat)
	r.GET("/health", Health)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSearchReturnsAnnotatedArticles(t *testing.T) {
	searcher := &fakeSearcher{
		articles: []news.Article{
			{Title: "서울 전역에 첫눈", Link: "https://example.com/1", Summary: "서울에 첫눈. 기온 하락. 출근길 혼잡.", Published: "2026-02-26 11:02"},
		},
	}
	r := newTestRouter(searcher, &fakeGateway{})

	w := postJSON(t, r, "/search", SearchRequest{Keyword: "날씨"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "날씨", searcher.gotKeyword)
	assert.Equal(t, 10, searcher.gotMax)

	var res SearchResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, false, res.Error)
	assert.Equal(t, 1, len(res.Articles))
	assert.Equal(t, "서울 전역에 첫눈", res.Articles[0].Title)
	// summary_short holds the first two heuristic sentences.
	assert.Equal(t, "서울에 첫눈. 기온 하락.", res.Articles[0].SummaryShort)
}

func TestSearchEmptyKeyword(t *testing.T) {
	searcher := &fakeSearcher{}
	r := newTestRouter(searcher, &fakeGateway{})

	w := postJSON(t, r, "/search", SearchRequest{Keyword: "   "})

	var res ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Error)
	assert.Equal(t, "키워드가 입력되지 않았습니다.", res.Message)
	assert.Equal(t, "", searcher.gotKeyword)
}

func TestSearchFetchErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{
			name:        "timeout",
			err:         &news.FetchError{Kind: news.KindTimeout, Err: errors.New("deadline exceeded")},
			wantMessage: "네트워크 요청 시간이 초과되었습니다.",
		},
		{
			name:        "connection",
			err:         &news.FetchError{Kind: news.KindConnection, Err: errors.New("refused")},
			wantMessage: "인터넷 연결에 실패했습니다.",
		},
		{
			name:        "parse",
			err:         &news.FetchError{Kind: news.KindParse, Err: errors.New("bad xml")},
			wantMessage: "뉴스 데이터를 파싱하는 중 오류가 발생했습니다.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakeSearcher{err: tt.err}, &fakeGateway{})
			w := postJSON(t, r, "/search", SearchRequest{Keyword: "날씨"})

			var res ErrorResponse
			json.Unmarshal(w.Body.Bytes(), &res)
			assert.Equal(t, true, res.Error)
			assert.Equal(t, tt.wantMessage, res.Message)
		})
	}
}

func TestSummarizeEmptyArticles(t *testing.T) {
	gateway := &fakeGateway{}
	r := newTestRouter(&fakeSearcher{}, gateway)

	w := postJSON(t, r, "/summarize", SummarizeRequest{})

	var res ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Error)
	assert.Equal(t, "뉴스가 없습니다.", res.Message)
	assert.Equal(t, 0, gateway.summarizeCalls)
}

func TestSummarizeSuccess(t *testing.T) {
	gateway := &fakeGateway{summary: "전체 요약입니다."}
	r := newTestRouter(&fakeSearcher{}, gateway)

	articles := []model.Article{
		{Title: "첫눈", Summary: "", SummaryShort: "짧은 요약.", Published: "2026-02-26 11:02"},
		{Title: "한파", Summary: "원본 요약.", Published: "2026-02-27 08:00"},
	}
	w := postJSON(t, r, "/summarize", SummarizeRequest{Articles: articles})

	var res SummarizeResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, false, res.Error)
	assert.Equal(t, "전체 요약입니다.", res.Summary)
	assert.Equal(t, 1, gateway.summarizeCalls)

	// Raw summary preferred, short snippet as fallback.
	assert.Equal(t, "짧은 요약.", gateway.gotArticles[0].Summary)
	assert.Equal(t, "원본 요약.", gateway.gotArticles[1].Summary)
}

func TestSummarizeNoCredential(t *testing.T) {
	gateway := &fakeGateway{err: llm.ErrNoCredential}
	r := newTestRouter(&fakeSearcher{}, gateway)

	w := postJSON(t, r, "/summarize", SummarizeRequest{Articles: []model.Article{{Title: "첫눈"}}})

	var res ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Error)
	assert.Equal(t, "API 키가 설정되지 않았습니다.", res.Message)
}

func TestSummarizeUpstreamErrorKeepsRawText(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("429 quota exceeded")}
	r := newTestRouter(&fakeSearcher{}, gateway)

	w := postJSON(t, r, "/summarize", SummarizeRequest{Articles: []model.Article{{Title: "첫눈"}}})

	var res ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Error)
	if !strings.Contains(res.Message, "429 quota exceeded") {
		t.Errorf("raw upstream error text lost: %q", res.Message)
	}
}

func TestChatMissingInput(t *testing.T) {
	gateway := &fakeGateway{}
	r := newTestRouter(&fakeSearcher{}, gateway)

	w := postJSON(t, r, "/chat", ChatRequest{Message: "질문"})
	var res ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "뉴스가 없습니다.", res.Message)

	w = postJSON(t, r, "/chat", ChatRequest{Articles: []model.Article{{Title: "첫눈"}}})
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "메시지가 없습니다.", res.Message)

	assert.Equal(t, 0, gateway.chatCalls)
}

func TestChatSuccess(t *testing.T) {
	gateway := &fakeGateway{answer: "주말에 춥습니다."}
	r := newTestRouter(&fakeSearcher{}, gateway)

	w := postJSON(t, r, "/chat", ChatRequest{
		Articles: []model.Article{{Title: "한파", Summary: "주말 내내 춥겠다."}},
		Message:  "주말 날씨 어때?",
	})

	var res ChatResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, false, res.Error)
	assert.Equal(t, "주말에 춥습니다.", res.Response)
	assert.Equal(t, "주말 날씨 어때?", gateway.gotMessage)
	assert.Equal(t, 1, gateway.chatCalls)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&fakeSearcher{}, &fakeGateway{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
}
