package schedule

import "testing"

func TestPlanProgression(t *testing.T) {
	want := []Difficulty{Easy, Easy, Medium, Medium, Hard, Hard}
	for i, d := range want {
		if At(i) != d {
			t.Errorf("At(%d) = %s, want %s", i, At(i), d)
		}
	}
}

func TestAtOutOfRange(t *testing.T) {
	if At(-1) != Medium {
		t.Errorf("At(-1) = %s, want medium", At(-1))
	}
	if At(6) != Medium {
		t.Errorf("At(6) = %s, want medium", At(6))
	}
}

func TestTimeLimits(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{Easy, 20},
		{Medium, 60},
		{Hard, 120},
		{Difficulty("unknown"), 60},
	}
	for _, tt := range tests {
		if got := TimeLimit(tt.d); got != tt.want {
			t.Errorf("TimeLimit(%s) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestWeights(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{Easy, 1},
		{Medium, 2},
		{Hard, 3},
		{Difficulty("unknown"), 1},
	}
	for _, tt := range tests {
		if got := Weight(tt.d); got != tt.want {
			t.Errorf("Weight(%s) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestValid(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		if !Valid(d) {
			t.Errorf("Valid(%s) = false, want true", d)
		}
	}
	if Valid(Difficulty("extreme")) {
		t.Error("Valid(extreme) = true, want false")
	}
}
