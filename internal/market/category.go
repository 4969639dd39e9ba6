package market

import (
	"regexp"
	"strings"
)

// categoryDef pairs a category with the keywords that assign it. Table order
// matters: classification returns the first category with any matching
// keyword, not the best match.
type categoryDef struct {
	id       string
	color    string
	keywords []string
	patterns []*regexp.Regexp
}

var categoryTable = []categoryDef{
	{
		id:    "politics",
		color: "#EF4444",
		keywords: []string{
			"election", "president", "congress", "senate", "government",
			"political", "vote", "democrat", "republican", "party", "biden",
			"trump", "nato", "supreme leader", "prime minister", "parliament",
			"governor", "mayor",
		},
	},
	{
		id:    "sports",
		color: "#10B981",
		keywords: []string{
			"nba", "nfl", "mlb", "nhl", "soccer", "football", "basketball",
			"baseball", "hockey", "world series", "super bowl", "mvp award",
			"playoff", "world cup", "olympics", "formula 1", "f1",
			"champions league", "premier league", "la liga", "serie a",
			"bundesliga", "uefa", "fifa", "tennis", "golf", "masters",
			"wimbledon", "grand slam", "nascar", "quarterback", "pitcher",
			"striker", "goalie",
		},
	},
	{
		id:    "crypto",
		color: "#F59E0B",
		keywords: []string{
			"bitcoin", "btc", "ethereum", "eth", "crypto", "usdt", "usdc",
			"solana", "sol", "tether", "defi", "nft", "blockchain", "coinbase",
			"binance", "kraken", "depeg", "stablecoin",
		},
	},
	{
		id:    "business",
		color: "#3B82F6",
		keywords: []string{
			"stock price", "market cap", "ipo", "earnings", "revenue", "ceo",
			"cfo", "layoffs", "merger", "acquisition", "bankruptcy", "profit",
			"loss", "quarterly", "shareholders",
		},
	},
	{
		id:    "technology",
		color: "#8B5CF6",
		keywords: []string{
			"artificial intelligence", "chatgpt", "openai", "deepmind",
			"machine learning", "neural network", "gpt-5", "gpt-4", "claude",
			"gemini", "llm", "robotics", "autonomous", "self-driving",
			"quantum computing",
		},
	},
}

// CategoryOther is the fallback when no keyword matches.
var CategoryOther = Category{ID: "other", Name: "Other", Color: "#6B7280"}

func init() {
	for i := range categoryTable {
		def := &categoryTable[i]
		def.patterns = make([]*regexp.Regexp, len(def.keywords))
		for j, kw := range def.keywords {
			// Whole-word match with keyword special characters escaped.
			def.patterns[j] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		}
	}
}

// Classify assigns a category from free text. It is a pure function of the
// text and is shared by the normalizer and the category filter.
func Classify(text string) Category {
	lowered := strings.ToLower(text)
	for _, def := range categoryTable {
		for _, pattern := range def.patterns {
			if pattern.MatchString(lowered) {
				return Category{
					ID:    def.id,
					Name:  titleCase(def.id),
					Color: def.color,
				}
			}
		}
	}
	return CategoryOther
}

// matchesCategory reports whether the text contains any keyword of the given
// category. Unknown category ids never match.
func matchesCategory(categoryID, text string) bool {
	lowered := strings.ToLower(text)
	for _, def := range categoryTable {
		if def.id != categoryID {
			continue
		}
		for _, pattern := range def.patterns {
			if pattern.MatchString(lowered) {
				return true
			}
		}
	}
	return false
}

// knownCategory reports whether id is in the category table.
func knownCategory(id string) bool {
	for _, def := range categoryTable {
		if def.id == id {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
