package scoring

import (
	"math"
	"sort"

	"github.com/chensirou3/marketnewsanaylzer/internal/model"
)

// Config holds the ranking tunables. Weights are expected to sum to 1.0.
type Config struct {
	SentimentWeight        float64
	ImportanceWeight       float64
	MinImportanceThreshold float64
	TopNewsCount           int
}

func DefaultConfig() Config {
	return Config{
		SentimentWeight:        0.6,
		ImportanceWeight:       0.4,
		MinImportanceThreshold: 20.0,
		TopNewsCount:           10,
	}
}

// ImportanceFunc supplies the importance signal for a record, on a 0-100
// scale. May be backed by an external model or a local heuristic.
type ImportanceFunc func(model.NewsRecord) float64

type Scorer struct {
	cfg        Config
	importance ImportanceFunc
}

func NewScorer(cfg Config, importance ImportanceFunc) *Scorer {
	if importance == nil {
		importance = HeuristicImportance
	}
	return &Scorer{cfg: cfg, importance: importance}
}

// Score wraps each record with its sentiment and importance scores. Relevance
// stays at its reporting default and plays no part in ranking.
func (s *Scorer) Score(records []model.NewsRecord) []model.ScoredRecord {
	scored := make([]model.ScoredRecord, 0, len(records))
	for _, r := range records {
		scored = append(scored, model.ScoredRecord{
			Record:          r,
			Title:           r.Title,
			SentimentScore:  r.AlphaSentiment,
			ImportanceScore: clamp(s.importance(r), 0, 100),
			RelevanceScore:  model.DefaultRelevance,
			Summary:         r.DerivedSummary(),
		})
	}
	return scored
}

// Composite combines normalized sentiment magnitude with importance. Sign is
// dropped here; polarity stays available on SentimentScore for reporting.
func (s *Scorer) Composite(r model.ScoredRecord) float64 {
	return s.cfg.SentimentWeight*normalizedAbs(r.SentimentScore) +
		s.cfg.ImportanceWeight*(r.ImportanceScore/100)
}

// SelectTopRelevant drops records below the importance threshold, ranks the
// rest by composite score descending with earliest-published tie-break, and
// truncates to the configured top-N. Empty in, empty out.
func (s *Scorer) SelectTopRelevant(scored []model.ScoredRecord) []model.ScoredRecord {
	eligible := make([]model.ScoredRecord, 0, len(scored))
	for _, r := range scored {
		if r.ImportanceScore < s.cfg.MinImportanceThreshold {
			continue
		}
		eligible = append(eligible, r)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		ci, cj := s.Composite(eligible[i]), s.Composite(eligible[j])
		if ci != cj {
			return ci > cj
		}
		// Wire timestamps sort lexicographically in chronological order.
		return eligible[i].Record.PublishTime < eligible[j].Record.PublishTime
	})

	if s.cfg.TopNewsCount > 0 && len(eligible) > s.cfg.TopNewsCount {
		eligible = eligible[:s.cfg.TopNewsCount]
	}
	return eligible
}

// HeuristicImportance derives a deterministic importance signal from content
// depth and sentiment strength when no external signal is available.
func HeuristicImportance(r model.NewsRecord) float64 {
	score := 30.0
	score += math.Min(float64(len([]rune(r.Content)))/20.0, 40.0)
	score += math.Abs(r.AlphaSentiment) * 30.0
	return clamp(score, 0, 100)
}

func normalizedAbs(sentiment float64) float64 {
	return clamp(math.Abs(sentiment), 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
