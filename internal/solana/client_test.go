package solana

import (
	"strings"
	"testing"
)

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected bool
	}{
		{"real-looking address", "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", true},
		{"minimum length", strings.Repeat("A", 32), true},
		{"maximum length", strings.Repeat("A", 44), true},
		{"too short", strings.Repeat("A", 31), false},
		{"too long", strings.Repeat("A", 45), false},
		{"empty", "", false},
		{"contains zero", "0" + strings.Repeat("A", 33), false},
		{"contains uppercase O", "O" + strings.Repeat("A", 33), false},
		{"contains uppercase I", "I" + strings.Repeat("A", 33), false},
		{"contains lowercase l", "l" + strings.Repeat("A", 33), false},
		{"ethereum address rejected", "0x742d35Cc6634C0532925a3b844Bc454e4438f44e", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidAddress(tt.address); got != tt.expected {
				t.Errorf("'%s': got %v, want %v", tt.address, got, tt.expected)
			}
		})
	}
}
