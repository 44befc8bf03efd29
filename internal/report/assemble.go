package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chensirou3/marketnewsanaylzer/internal/model"
)

// ErrMissingSection indicates a required narrative fragment was absent.
var ErrMissingSection = errors.New("missing report section")

// Assemble builds the full analysis report from externally produced narrative
// fragments and the top scored records. No partial reports: either every
// fragment is present or assembly fails.
func Assemble(assetName, date string, top []model.ScoredRecord, overview, analysis, conclusion string) (*model.AnalysisReport, error) {
	sections := []struct {
		name string
		text string
	}{
		{"market overview", overview},
		{"market analysis", analysis},
		{"conclusion", conclusion},
	}
	for _, s := range sections {
		if strings.TrimSpace(s.text) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingSection, s.name)
		}
	}

	title := fmt.Sprintf("%s Market News Analysis", assetName)
	return model.NewAnalysisReport(title, date, assetName,
		overview, renderNewsSummary(top), analysis, conclusion), nil
}

func renderNewsSummary(top []model.ScoredRecord) string {
	if len(top) == 0 {
		return "No material news cleared the importance threshold on this date."
	}

	var sb strings.Builder
	for i, r := range top {
		fmt.Fprintf(&sb, "%d. **%s** (%s, sentiment %+.2f, importance %.0f)\n   %s\n",
			i+1, r.Title, r.Record.Source, r.SentimentScore, r.ImportanceScore, r.Summary)
	}
	return strings.TrimRight(sb.String(), "\n")
}
