package referral

import (
	"net/url"
	"testing"
)

func TestURL(t *testing.T) {
	g := NewGenerator("polymarks")

	tests := []struct {
		name             string
		eventID          string
		opts             *Options
		expectedCampaign string
		expectedContent  string
	}{
		{"default campaign", "will-btc-hit-200k", nil, "market", ""},
		{"custom campaign", "some-event", &Options{Campaign: "whale-alert"}, "whale-alert", ""},
		{"user content", "some-event", &Options{UserID: "u-42"}, "market", "u-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := g.URL(tt.eventID, tt.opts)

			parsed, err := url.Parse(raw)
			if err != nil {
				t.Fatalf("generated URL does not parse: %v", err)
			}
			if parsed.Hostname() != "polymarket.com" {
				t.Errorf("host: got '%s', want 'polymarket.com'", parsed.Hostname())
			}
			if parsed.Path != "/event/"+tt.eventID {
				t.Errorf("path: got '%s', want '/event/%s'", parsed.Path, tt.eventID)
			}

			q := parsed.Query()
			if q.Get("utm_source") != "polymarks" {
				t.Errorf("utm_source: got '%s', want 'polymarks'", q.Get("utm_source"))
			}
			if q.Get("utm_medium") != "referral" {
				t.Errorf("utm_medium: got '%s', want 'referral'", q.Get("utm_medium"))
			}
			if q.Get("utm_campaign") != tt.expectedCampaign {
				t.Errorf("utm_campaign: got '%s', want '%s'", q.Get("utm_campaign"), tt.expectedCampaign)
			}
			if q.Get("utm_content") != tt.expectedContent {
				t.Errorf("utm_content: got '%s', want '%s'", q.Get("utm_content"), tt.expectedContent)
			}
		})
	}
}

func TestIsPolymarketURL(t *testing.T) {
	tests := []struct {
		raw      string
		expected bool
	}{
		{"https://polymarket.com/event/abc", true},
		{"https://polymarket.com", true},
		{"https://example.com/event/abc", false},
		{"https://notpolymarket.com.evil.io", false},
		{"://bad-url", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := IsPolymarketURL(tt.raw); got != tt.expected {
				t.Errorf("'%s': got %v, want %v", tt.raw, got, tt.expected)
			}
		})
	}
}
