package dto

import "github.com/tastapp/tast-backend/internal/quizgen"

// CreateCourseRequest is the multipart form for course creation. The PDF
// itself and any additional files are read from the multipart body
// separately.
type CreateCourseRequest struct {
	CourseName   string `form:"courseName" binding:"required"`
	NumQuestions int    `form:"numQuestions" binding:"required,min=1"`
	Language     string `form:"language" binding:"required"`
	QuestionType string `form:"questionType" binding:"required"`
}

// CourseDetails is the detail payload returned after course creation.
type CourseDetails struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	PDFFile         string             `json:"pdfFile"`
	NumQuestions    int                `json:"numQuestions"`
	QuestionType    string             `json:"questionType"`
	Language        string             `json:"language"`
	AdditionalFiles []string           `json:"additionalFiles,omitempty"`
	Questions       []quizgen.Question `json:"questions"`
}

// CourseSummary is a course without its questions, for listings.
type CourseSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	NumQuestions int    `json:"numQuestions"`
	QuestionType string `json:"questionType"`
	Language     string `json:"language"`
	CreatedAt    string `json:"createdAt"`
}

// CourseWithQuestions is a full course as served to the quiz-taking page.
type CourseWithQuestions struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	NumQuestions int                `json:"numQuestions"`
	QuestionType string             `json:"questionType"`
	Language     string             `json:"language"`
	Questions    []quizgen.Question `json:"questions"`
}
