package models

import "time"

// Course defines the course model based on the 'courses' table. Questions
// holds the generated question list as a JSON array, UTF-8 with Arabic
// text preserved verbatim.
type Course struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	PDFFile      string    `json:"pdfFile" db:"pdf_file"`
	NumQuestions int       `json:"numQuestions" db:"num_questions"`
	QuestionType string    `json:"questionType" db:"question_type"`
	Language     string    `json:"language" db:"language"`
	Questions    string    `json:"-" db:"questions"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
