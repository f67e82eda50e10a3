package engine

import "testing"

func TestContainsAny(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		terms []string
		want  bool
	}{
		{
			name:  "Term present",
			text:  "a legacy system revival",
			terms: []string{"legacy", "vintage"},
			want:  true,
		},
		{
			name:  "Term present as substring of larger word",
			text:  "unconventionally structured",
			terms: []string{"unconventional"},
			want:  true,
		},
		{
			name:  "No terms present",
			text:  "a modern web application",
			terms: []string{"legacy", "vintage"},
			want:  false,
		},
		{
			name:  "Empty text",
			text:  "",
			terms: []string{"legacy"},
			want:  false,
		},
		{
			name:  "Empty terms",
			text:  "anything",
			terms: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := containsAny(tt.text, tt.terms); got != tt.want {
				t.Errorf("containsAny(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCountTerms(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		terms []string
		want  int
	}{
		{
			name:  "Counts distinct terms once",
			text:  "legacy legacy vintage",
			terms: []string{"legacy", "vintage", "retro"},
			want:  2,
		},
		{
			name:  "No matches",
			text:  "fresh new build",
			terms: []string{"legacy", "vintage"},
			want:  0,
		},
		{
			name:  "All match",
			text:  "legacy vintage retro",
			terms: []string{"legacy", "vintage", "retro"},
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countTerms(tt.text, tt.terms); got != tt.want {
				t.Errorf("countTerms(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.24, 1.2},
		{1.25, 1.3},
		{4.5, 4.5},
		{0, 0},
		{9.99, 10},
	}

	for _, tt := range tests {
		if got := round1(tt.in); got != tt.want {
			t.Errorf("round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundHalf(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{3.65, 3.5},
		{3.75, 4.0},
		{4.2, 4.0},
		{4.3, 4.5},
		{0, 0},
	}

	for _, tt := range tests {
		if got := roundHalf(tt.in); got != tt.want {
			t.Errorf("roundHalf(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi float64
		want      float64
	}{
		{0.5, 1, 5, 1},
		{5.5, 1, 5, 5},
		{3, 1, 5, 3},
	}

	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestFitBand(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{10, "excellent"},
		{8, "excellent"},
		{7.9, "good"},
		{6, "good"},
		{5.9, "some"},
		{4, "some"},
		{3.9, "limited"},
		{0, "limited"},
	}

	for _, tt := range tests {
		if got := fitBand(tt.score); got != tt.want {
			t.Errorf("fitBand(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
