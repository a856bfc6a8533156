package dto

// QuizResult is the detail payload of a graded submission.
type QuizResult struct {
	CourseID int64  `json:"courseId"`
	Answered int    `json:"answered"`
	Total    int    `json:"total"`
	Score    string `json:"score"`
}
