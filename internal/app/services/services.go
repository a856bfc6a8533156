package services

// Services defined in this package:
// - AuthService: Handles login and token issuance
// - CourseService: Handles course creation, PDF text extraction and
//   question generation
// - QuizService: Handles quiz submissions and scoring
