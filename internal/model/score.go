package model

// DefaultRelevance is assigned when no independent relevance signal exists.
// It is a reporting-only weight and never feeds the composite ranking score.
const DefaultRelevance = 0.8

type ScoredRecord struct {
	Record          NewsRecord `json:"-"`
	Title           string     `json:"title"`
	SentimentScore  float64    `json:"sentiment_score"`
	ImportanceScore float64    `json:"importance_score"`
	RelevanceScore  float64    `json:"relevance_score"`
	Summary         string     `json:"summary"`
}
