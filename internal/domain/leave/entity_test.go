package leave

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInclusive(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2025, 3, 10), date(2025, 3, 10), 1},
		{"two days", date(2025, 3, 10), date(2025, 3, 11), 2},
		{"full week", date(2025, 3, 10), date(2025, 3, 16), 7},
		{"across month boundary", date(2025, 2, 27), date(2025, 3, 2), 4},
		{"across year boundary", date(2024, 12, 30), date(2025, 1, 2), 4},
		{"ignores time of day", date(2025, 3, 10).Add(23 * time.Hour), date(2025, 3, 11), 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DaysInclusive(c.start, c.end)
			if got != c.want {
				t.Errorf("DaysInclusive(%v, %v) = %d, want %d", c.start, c.end, got, c.want)
			}
		})
	}
}

func TestValidDecision(t *testing.T) {
	if !ValidDecision(DecisionApproved) || !ValidDecision(DecisionRejected) {
		t.Error("Approved and Rejected must be valid decisions")
	}
	if ValidDecision(DecisionPending) {
		t.Error("Pending is a state, not a decision")
	}
	if ValidDecision(Decision("Maybe")) {
		t.Error("unknown decisions must be rejected")
	}
}

func TestTerminal(t *testing.T) {
	pending := LeaveRequest{Status: DecisionPending}
	if pending.Terminal() {
		t.Error("a pending request is not terminal")
	}
	rejected := LeaveRequest{Status: DecisionRejected}
	if !rejected.Terminal() {
		t.Error("a rejected request is terminal")
	}
}
