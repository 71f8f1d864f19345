package handler

import "newschat/internal/model"

// Error envelope shared by search, summarize and chat. The front end
// switches on the error flag, so domain failures still answer HTTP 200.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type SearchRequest struct {
	Keyword string `json:"keyword"`
}

type SearchResponse struct {
	Error    bool            `json:"error"`
	Articles []model.Article `json:"articles"`
}

type SummarizeRequest struct {
	Articles []model.Article `json:"articles"`
}

type SummarizeResponse struct {
	Error   bool   `json:"error"`
	Summary string `json:"summary"`
}

type ChatRequest struct {
	Articles []model.Article `json:"articles"`
	Message  string          `json:"message"`
}

type ChatResponse struct {
	Error    bool   `json:"error"`
	Response string `json:"response"`
}

type SaveRequest struct {
	Keyword  string          `json:"keyword"`
	Articles []model.Article `json:"articles"`
}

type SaveResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type SavedResponse struct {
	Success   bool                 `json:"success"`
	SavedNews []model.SearchRecord `json:"saved_news"`
}

type APIKeyRequest struct {
	APIKey string `json:"api_key"`
}
