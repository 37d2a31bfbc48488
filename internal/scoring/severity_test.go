package scoring

import "testing"

func TestLevelForPercentage_Boundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want SeverityLevel
	}{
		{0, LevelMinimal},
		{20, LevelMinimal},
		{20.01, LevelLow},
		{40, LevelLow},
		{40.01, LevelModerate},
		{60, LevelModerate},
		{60.01, LevelHigh},
		{80, LevelHigh},
		{80.01, LevelSignificant},
		{100, LevelSignificant},
	}
	for _, tt := range tests {
		if got := LevelForPercentage(tt.pct); got != tt.want {
			t.Errorf("LevelForPercentage(%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestLevelForPercentage_Monotonic(t *testing.T) {
	prev := LevelMinimal
	for pct := 0.0; pct <= 100; pct += 0.25 {
		level := LevelForPercentage(pct)
		if level < prev {
			t.Fatalf("level decreased from %s to %s at %v%%", prev, level, pct)
		}
		prev = level
	}
}

func TestSeverityLevel_Strings(t *testing.T) {
	want := []string{"minimal", "low", "moderate", "high", "significant"}
	for i, level := range AllLevels() {
		if level.String() != want[i] {
			t.Errorf("level %d String() = %q, want %q", i, level.String(), want[i])
		}
	}
}
