package render

import "testing"

func TestDetectTierExplicit(t *testing.T) {
	tests := []struct {
		setting string
		want    Tier
	}{
		{"on", TierRich},
		{"ON", TierRich},
		{"off", TierPlain},
		{"sometimes", TierPlain},
	}
	for _, tt := range tests {
		if got := DetectTier(tt.setting); got != tt.want {
			t.Errorf("DetectTier(%q) = %d, want %d", tt.setting, got, tt.want)
		}
	}
}
