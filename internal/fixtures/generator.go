package fixtures

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/chensirou3/marketnewsanaylzer/internal/model"
)

// DefaultAsset is the fallback template source for assets without dedicated
// templates.
const DefaultAsset = "stock"

type Template struct {
	Title     string
	Content   string
	Source    string
	Sentiment float64
}

var templatesByAsset = map[string][]Template{
	"oil": {
		{
			Title:     "OPEC+ Extends Output Cuts, Crude Edges Higher",
			Content:   "OPEC and its allies announced on Wednesday an extension of production cuts through the end of 2025 to support prices. WTI crude futures rose 1.2% to $69.50 a barrel after the announcement, with Brent up 1.0% at $74.30. Analysts said the decision signals producer caution about the demand outlook.",
			Source:    "Reuters",
			Sentiment: 0.35,
		},
		{
			Title:     "US Crude Inventories Fall Unexpectedly, Supply Tightens",
			Content:   "EIA data released Tuesday showed US crude inventories fell by 2.5 million barrels last week, against analyst expectations of a 1 million barrel build. Gasoline stocks also declined by 1.8 million barrels. The draw suggests US oil demand may be stronger than forecast, lifting WTI futures 2% in the session.",
			Source:    "Bloomberg",
			Sentiment: 0.42,
		},
		{
			Title:     "Soft Chinese Economic Data Pressures Oil Prices",
			Content:   "China's February manufacturing PMI came in at 49.5, a fourth straight month in contraction territory, pointing to continued demand weakness from the world's largest crude importer. International oil prices fell about 1.5% on the release, with WTI slipping below $68 a barrel.",
			Source:    "Financial Times",
			Sentiment: -0.28,
		},
	},
	"gold": {
		{
			Title:     "Fed Hints at Rate Cuts This Year, Gold Hits Record High",
			Content:   "Federal Reserve Chair Powell suggested in his latest remarks that rate cuts could begin this year if inflation keeps cooling. Gold futures rose 1.8% on the news, breaking above $2,100 an ounce to a record high. Analysts see a lower-rate environment continuing to support bullion.",
			Source:    "Wall Street Journal",
			Sentiment: 0.65,
		},
		{
			Title:     "Geopolitical Tensions Drive Safe-Haven Demand for Gold",
			Content:   "Escalating conflict in the Middle East and a new phase of the Russia-Ukraine war have pushed global geopolitical risk markedly higher. Investors rotated into gold and other safe-haven assets, lifting the metal 2.5% over the past week to $2,050 an ounce. Central bank buying also remains robust.",
			Source:    "Reuters",
			Sentiment: 0.38,
		},
		{
			Title:     "India Cuts Gold Import Duty, Physical Demand Set to Rise",
			Content:   "India's finance ministry announced a reduction of the gold import duty from 12.5% to 10% to curb smuggling and boost legal imports. As the world's second-largest gold consumer, India's policy shift is expected to stimulate physical demand ahead of the wedding and festival season.",
			Source:    "Economic Times",
			Sentiment: 0.51,
		},
	},
	"stock": {
		{
			Title:     "Tech Rally Pushes Nasdaq to Record High",
			Content:   "Strength in artificial intelligence names drove the Nasdaq Composite up 1.2% to a record close. Nvidia gained 3.5% while Microsoft and Alphabet added 2.1% and 1.8% respectively. Analysts said the AI investment cycle remains intact and megacap tech should keep benefiting.",
			Source:    "CNBC",
			Sentiment: 0.72,
		},
		{
			Title:     "Strong US Jobs Data Lifts Soft-Landing Hopes",
			Content:   "The Labor Department reported nonfarm payrolls rose by 225,000 last month with unemployment holding at a low 3.7%. The better-than-expected print points to continued resilience in the US economy. The Dow rose 0.8% and the S&P 500 gained 0.6% on the data.",
			Source:    "Bloomberg",
			Sentiment: 0.58,
		},
		{
			Title:     "ECB Cuts Rates, European Equities Broadly Higher",
			Content:   "The European Central Bank lowered its benchmark rate by 25 basis points, its first cut in three years, aiming to support euro-area growth with inflation judged under control. The Stoxx 600 rose 1.5%, with Germany's DAX and France's CAC 40 up 1.7% and 1.6%.",
			Source:    "Financial Times",
			Sentiment: 0.45,
		},
	},
	"crypto": {
		{
			Title:     "Bitcoin Breaks $80,000 to Record High",
			Content:   "Bitcoin crossed the $80,000 mark for the first time, driven by sustained ETF inflows and the approaching halving event. Institutional participation has risen markedly and sentiment is buoyant. Ethereum and other major tokens followed the move higher.",
			Source:    "CoinDesk",
			Sentiment: 0.81,
		},
		{
			Title:     "SEC Approves Spot Ethereum ETFs in Market Milestone",
			Content:   "The US Securities and Exchange Commission approved the first spot Ethereum ETFs, a landmark for the crypto market. Ether jumped 12% past $4,000 on the news. Analysts expect the decision to channel more institutional money into Ethereum and lend legitimacy to the broader market.",
			Source:    "Bloomberg",
			Sentiment: 0.75,
		},
		{
			Title:     "Central Banks Accelerate CBDC Work as Private Tokens Face Scrutiny",
			Content:   "A BIS report says more than 80% of central banks are researching or building central bank digital currencies, while regulators in several countries tightened oversight of private cryptocurrencies. Markets worry the trend poses a long-term challenge to decentralized tokens, and some prices came under pressure.",
			Source:    "Reuters",
			Sentiment: -0.32,
		},
	},
	"forex": {
		{
			Title:     "Dollar Index Slides to Nine-Month Low as Majors Rally",
			Content:   "Rising Fed rate-cut expectations pushed the dollar index down 0.8% to a nine-month low. The euro climbed to 1.12 against the dollar, sterling broke above 1.30, and the yen strengthened below 140. Analysts attribute the weakness to narrowing rate differentials with other major economies.",
			Source:    "Reuters",
			Sentiment: -0.25,
		},
		{
			Title:     "PBOC Steps In to Steady Yuan, Offshore Rate Rebounds Sharply",
			Content:   "The People's Bank of China intervened in currency markets through multiple channels and set a stronger daily fixing to stem recent yuan depreciation. The offshore yuan gained nearly 1% against the dollar, its biggest one-day rise in three months, signaling authorities' discomfort with rapid weakening.",
			Source:    "Bloomberg",
			Sentiment: 0.42,
		},
		{
			Title:     "BOJ Signals Further Tightening, Yen Jumps",
			Content:   "Bank of Japan Governor Ueda said further policy tightening would be considered if inflation holds above target. The yen rose 1.5% against the dollar to a six-month high on the remarks. Analysts expect another rate hike within the year, ending the era of ultra-loose policy.",
			Source:    "Financial Times",
			Sentiment: 0.38,
		},
	},
}

// Generate returns deterministic fixture records for offline or degraded-
// network runs. Count is capped at the available templates; asset keys
// without dedicated templates draw from DefaultAsset with a logged
// substitution. URLs are synthetic and derived from the requested asset key.
func Generate(assetKey string, count int) []model.NewsRecord {
	templates, ok := templatesByAsset[assetKey]
	if !ok || len(templates) == 0 {
		slog.Warn("no fixture templates for asset, using default templates",
			"asset", assetKey, "fallback", DefaultAsset)
		templates = templatesByAsset[DefaultAsset]
	}

	if count < 0 {
		count = 0
	}
	if count > len(templates) {
		count = len(templates)
	}

	now := time.Now().Format(model.PublishTimeLayout)
	records := make([]model.NewsRecord, 0, count)
	for i, tpl := range templates[:count] {
		records = append(records, model.NewsRecord{
			Title:          tpl.Title,
			OriginalTitle:  tpl.Title,
			Content:        tpl.Content,
			PublishTime:    now,
			Source:         tpl.Source,
			URL:            fmt.Sprintf("https://example.com/news/%s/%d", assetKey, i+1),
			AlphaSentiment: tpl.Sentiment,
		})
	}
	return records
}
