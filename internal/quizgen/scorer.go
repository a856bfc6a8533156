package quizgen

import "fmt"

// Result summarizes a graded quiz submission.
type Result struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

// Score counts how many of the claimed total questions received a
// non-empty answer. Grading is presence-only: an answered question counts
// toward the score regardless of which option was picked. Indexes outside
// [0, total) are ignored.
func Score(total int, answers map[int]string) Result {
	answered := 0
	for i := 0; i < total; i++ {
		if a, ok := answers[i]; ok && a != "" {
			answered++
		}
	}
	return Result{Answered: answered, Total: total}
}

// Percentage returns the score as a 0-100 value. A zero total scores zero
// rather than dividing by zero.
func (r Result) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Answered) / float64(r.Total) * 100
}

// String formats the score to two decimal places, e.g. "80.00%".
func (r Result) String() string {
	return fmt.Sprintf("%.2f%%", r.Percentage())
}
