package market

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// FlexFloat is a float64 that tolerates upstream type drift: the Gamma API
// serves some numeric fields as JSON strings, and missing or mistyped values
// must coerce to 0 rather than fail the record.
type FlexFloat float64

// UnmarshalJSON never returns an error; anything unparseable becomes 0.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			*f = FlexFloat(n)
			return nil
		}
	}

	*f = 0
	return nil
}

// FlexString is a string that also accepts JSON numbers (some provider ids
// arrive as numerics).
type FlexString string

// UnmarshalJSON never returns an error; non-string, non-number values become "".
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = FlexString(num.String())
		return nil
	}

	*s = ""
	return nil
}

// RawOutcome is a provider outcome payload (outcomes or tokens shape).
type RawOutcome struct {
	ID      FlexString `json:"id"`
	TokenID FlexString `json:"token_id"`
	Name    string     `json:"name"`
	Outcome string     `json:"outcome"`
	Price   FlexFloat  `json:"price"`
	Volume  FlexFloat  `json:"volume"`
}

// RawMarket is a provider market payload with every alias the API is known to
// use. Fields are loosely typed; the normalizer resolves them into a
// canonical Market.
type RawMarket struct {
	Slug        string       `json:"slug"`
	MarketSlug  string       `json:"market_slug"`
	ID          FlexString   `json:"id"`
	ConditionID string       `json:"condition_id"`
	Question    string       `json:"question"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Outcomes    []RawOutcome `json:"outcomes"`
	Tokens      []RawOutcome `json:"tokens"`
	Volume      FlexFloat    `json:"volume"`
	Liquidity   FlexFloat    `json:"liquidity"`
	Volume24h   FlexFloat    `json:"volume24h"`
	EndDate     string       `json:"end_date"`
	EndDateAlt  string       `json:"endDate"`
	Image       string       `json:"image"`
	Icon        string       `json:"icon"`
	Active      *bool        `json:"active"`
	Closed      *bool        `json:"closed"`
}

var endDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02",
}

// NormalizeMarket converts a raw provider payload into a canonical Market.
// Missing fields resolve to defaults rather than failures; only a nil record
// yields nil. The category is inferred from the question and description
// text.
func NormalizeMarket(raw *RawMarket) *Market {
	if raw == nil {
		return nil
	}

	id := firstNonEmpty(raw.Slug, raw.MarketSlug, string(raw.ID), raw.ConditionID)
	question := firstNonEmpty(raw.Question, raw.Title, "Unknown Market")

	category := Classify(question + " " + raw.Description)

	rawOutcomes := raw.Outcomes
	if len(rawOutcomes) == 0 {
		rawOutcomes = raw.Tokens
	}

	outcomes := make([]Outcome, 0, len(rawOutcomes))
	for _, o := range rawOutcomes {
		price := float64(o.Price)
		outcomes = append(outcomes, Outcome{
			ID:          firstNonEmpty(string(o.ID), string(o.TokenID)),
			Name:        firstNonEmpty(o.Name, o.Outcome, "Unknown"),
			Price:       price,
			Probability: price,
			Volume24h:   float64(o.Volume),
			// Upstream does not serve per-outcome 24h price changes; zero is
			// a known data-quality gap, not a measured value.
			PriceChange24h: 0,
		})
	}

	volume24h := float64(raw.Volume24h)
	if volume24h == 0 {
		volume24h = float64(raw.Volume)
	}

	endDate := parseEndDate(firstNonEmpty(raw.EndDate, raw.EndDateAlt))

	active := (raw.Active == nil || *raw.Active) && (raw.Closed == nil || !*raw.Closed)

	return &Market{
		ID:          id,
		Question:    question,
		Description: raw.Description,
		Category:    category,
		Outcomes:    outcomes,
		Volume:      float64(raw.Volume),
		Liquidity:   float64(raw.Liquidity),
		Volume24h:   volume24h,
		EndDate:     endDate,
		Image:       firstNonEmpty(raw.Image, raw.Icon),
		Active:      active,
	}
}

func parseEndDate(s string) time.Time {
	for _, layout := range endDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
