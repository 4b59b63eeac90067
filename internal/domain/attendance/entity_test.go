package attendance

import (
	"testing"
	"time"
)

func TestWeekWindow(t *testing.T) {
	cases := []struct {
		name       string
		in         time.Time
		wantMonday string
		wantSunday string
	}{
		{"wednesday", time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC), "2025-03-10", "2025-03-16"},
		{"monday", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "2025-03-10", "2025-03-16"},
		{"sunday", time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC), "2025-03-10", "2025-03-16"},
		{"across month boundary", time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC), "2025-03-31", "2025-04-06"},
		{"across year boundary", time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC), "2024-12-30", "2025-01-05"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			monday, sunday := WeekWindow(c.in)
			if got := monday.Format("2006-01-02"); got != c.wantMonday {
				t.Errorf("monday = %s, want %s", got, c.wantMonday)
			}
			if got := sunday.Format("2006-01-02"); got != c.wantSunday {
				t.Errorf("sunday = %s, want %s", got, c.wantSunday)
			}
		})
	}
}

func TestValidAction(t *testing.T) {
	for _, a := range []Action{ActionPresent, ActionWFH, ActionLeave} {
		if !ValidAction(a) {
			t.Errorf("ValidAction(%q) = false, want true", a)
		}
	}
	for _, a := range []Action{"", "present", "Vacation", "Sick"} {
		if ValidAction(a) {
			t.Errorf("ValidAction(%q) = true, want false", a)
		}
	}
}
