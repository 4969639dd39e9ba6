package wallets

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		balance  float64
		expected Reputation
	}{
		{"whale", 50000, ReputationWhale},
		{"exactly 10K is insider not whale", 10000, ReputationInsider},
		{"insider", 5000, ReputationInsider},
		{"exactly 1K is holder not insider", 1000, ReputationHolder},
		{"holder", 500, ReputationHolder},
		{"exactly 10 is holder", 10, ReputationHolder},
		{"degen", 5, ReputationDegen},
		{"zero balance", 0, ReputationDegen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.balance); got != tt.expected {
				t.Errorf("balance %.0f: got %s, want %s", tt.balance, got, tt.expected)
			}
		})
	}
}

func TestShortAddress(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{"long address truncated", "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", "7xKXtg...gAsU"},
		{"short address unchanged", "abc123", "abc123"},
		{"exactly 12 chars unchanged", "123456789012", "123456789012"},
		{"13 chars truncated", "1234567890123", "123456...0123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortAddress(tt.address); got != tt.expected {
				t.Errorf("'%s': got '%s', want '%s'", tt.address, got, tt.expected)
			}
		})
	}
}
