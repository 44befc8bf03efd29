package model

import (
	"fmt"
	"time"
)

type AnalysisReport struct {
	Title          string `json:"title"`
	Date           string `json:"date"`
	AssetName      string `json:"asset_name"`
	MarketOverview string `json:"market_overview"`
	NewsSummary    string `json:"news_summary"`
	MarketAnalysis string `json:"market_analysis"`
	Conclusion     string `json:"conclusion"`
	GenerationTime string `json:"generation_time"`
}

// NewAnalysisReport fills the generation timestamp with the current date.
func NewAnalysisReport(title, date, assetName, overview, newsSummary, analysis, conclusion string) *AnalysisReport {
	return &AnalysisReport{
		Title:          title,
		Date:           date,
		AssetName:      assetName,
		MarketOverview: overview,
		NewsSummary:    newsSummary,
		MarketAnalysis: analysis,
		Conclusion:     conclusion,
		GenerationTime: time.Now().Format("2006-01-02"),
	}
}

func (r *AnalysisReport) ToMarkdown() string {
	return fmt.Sprintf(`**%s Market Analysis Report**
**Title: %s**
**Date: %s**

---

### **Analysis**

#### **1. Market Overview**
%s

#### **2. Key News Summary**
%s

#### **3. Market Analysis**
%s

---

### **Conclusion**
%s

---
**(Report generated: %s)**`,
		r.AssetName, r.Title, r.Date,
		r.MarketOverview, r.NewsSummary, r.MarketAnalysis,
		r.Conclusion, r.GenerationTime)
}
