package config

import (
	"testing"
	"time"
)

func TestStageDelayDurations(t *testing.T) {
	tests := []struct {
		name   string
		delays []int
		want   []time.Duration
	}{
		{"nil_disables", nil, nil},
		{"zeros_skipped", []int{0, 0, 0}, nil},
		{"mixed", []int{1200, 0, 700}, []time.Duration{1200 * time.Millisecond, 700 * time.Millisecond}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{StageDelays: tt.delays}
			got := cfg.StageDelayDurations()
			if len(got) != len(tt.want) {
				t.Fatalf("durations = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("durations[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
