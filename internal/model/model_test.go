package model

import "testing"

func TestCalcLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{14, 1},
		{15, 2},
		{59, 2},
		{60, 3},
		{135, 4},
	}
	for _, tt := range tests {
		if got := CalcLevel(tt.xp); got != tt.want {
			t.Errorf("CalcLevel(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range AllLevels {
		got, ok := ParseLevel(string(l))
		if !ok || got != l {
			t.Errorf("ParseLevel(%q) = %q, %v", l, got, ok)
		}
	}
	if _, ok := ParseLevel("6"); ok {
		t.Error("ParseLevel accepted unknown level")
	}
}

func TestDefaultUser(t *testing.T) {
	u := DefaultUser()
	if u.Icon != "/icons/default.png" || u.Banner != "/icons/default_banner.jpg" {
		t.Errorf("defaults = %+v", u)
	}
	if u.Status != "offline" {
		t.Errorf("status = %q", u.Status)
	}
}
