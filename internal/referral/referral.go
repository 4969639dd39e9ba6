// Package referral builds outbound venue links carrying tracking parameters.
package referral

import (
	"net/url"
)

const baseURL = "https://polymarket.com/event"

// Options carries optional tracking parameters.
type Options struct {
	UserID   string
	Campaign string
}

// Generator builds referral-tagged Polymarket URLs for a configured source.
type Generator struct {
	source string
}

// NewGenerator creates a Generator with the given utm_source.
func NewGenerator(source string) *Generator {
	return &Generator{source: source}
}

// URL returns the event URL with UTM tracking parameters attached.
func (g *Generator) URL(eventID string, opts *Options) string {
	campaign := "market"
	if opts != nil && opts.Campaign != "" {
		campaign = opts.Campaign
	}

	params := url.Values{}
	params.Set("utm_source", g.source)
	params.Set("utm_medium", "referral")
	params.Set("utm_campaign", campaign)
	if opts != nil && opts.UserID != "" {
		params.Set("utm_content", opts.UserID)
	}

	return baseURL + "/" + url.PathEscape(eventID) + "?" + params.Encode()
}

// IsPolymarketURL reports whether raw points at polymarket.com.
func IsPolymarketURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Hostname() == "polymarket.com"
}
