package model

// Article is one normalized entry from a keyword search. It is both the
// wire shape served to the front end and the shape persisted in the
// archive file.
type Article struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	Summary      string `json:"summary"`
	SummaryShort string `json:"summary_short,omitempty"`
	Published    string `json:"published"`
}

// SearchRecord is one archived search: the keyword, when it was saved and
// the articles it returned, in feed order.
type SearchRecord struct {
	Keyword   string    `json:"keyword"`
	Timestamp string    `json:"timestamp"`
	Articles  []Article `json:"articles"`
}
