package quizgen

import "testing"

func TestScore(t *testing.T) {
	cases := []struct {
		name    string
		total   int
		answers map[int]string
		want    string
	}{
		{"four of five", 5, map[int]string{0: "a", 1: "b", 2: "c", 3: "d"}, "80.00%"},
		{"all answered", 3, map[int]string{0: "x", 1: "y", 2: "z"}, "100.00%"},
		{"none answered", 4, map[int]string{}, "0.00%"},
		{"empty answers ignored", 2, map[int]string{0: "", 1: "ok"}, "50.00%"},
		{"out of range ignored", 2, map[int]string{0: "a", 5: "b"}, "50.00%"},
		{"third gives repeating decimal", 3, map[int]string{0: "a"}, "33.33%"},
		{"zero total", 0, map[int]string{}, "0.00%"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.total, tc.answers)
			if got.String() != tc.want {
				t.Fatalf("Score(%d, %v): want=%s got=%s", tc.total, tc.answers, tc.want, got)
			}
		})
	}
}

func TestScoreCountsPresenceNotCorrectness(t *testing.T) {
	// Grading never compares against the stored correct option.
	r := Score(2, map[int]string{0: "definitely wrong", 1: "also wrong"})
	if r.String() != "100.00%" {
		t.Fatalf("presence-only grading: want=100.00%% got=%s", r)
	}
}
