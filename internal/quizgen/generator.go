package quizgen

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
)

// Type is the closed set of supported question types. Raw form values are
// parsed once at the boundary with ParseType; everything past that point
// switches on the enum.
type Type int

const (
	TypeMCQ Type = iota
	TypeTrueFalse
)

// ParseType maps a user-supplied question type string to a Type,
// case-insensitively.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mcq":
		return TypeMCQ, nil
	case "true_false":
		return TypeTrueFalse, nil
	default:
		return 0, fmt.Errorf("unknown question type %q", s)
	}
}

func (t Type) String() string {
	switch t {
	case TypeTrueFalse:
		return "true_false"
	default:
		return "mcq"
	}
}

// Option is a single selectable answer.
type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// Question is one generated quiz question. Numbers form a contiguous
// 1-based sequence matching list order.
type Question struct {
	Number  int      `json:"question_number"`
	Text    string   `json:"question"`
	Options []Option `json:"options"`
}

// Generate builds at most n questions from the cleaned sentences, one
// question per sentence in order. When fewer than n sentences are
// available the result is shorter than n; an empty sequence yields an
// empty list, never an error.
func Generate(sentences iter.Seq[string], n int, qt Type) []Question {
	var questions []Question
	i := 0
	for s := range sentences {
		if i >= n {
			break
		}
		switch qt {
		case TypeTrueFalse:
			questions = append(questions, trueFalseQuestion(i+1, s))
		default:
			questions = append(questions, mcqQuestion(i+1, s))
		}
		i++
	}
	return questions
}

// mcqQuestion asks "what is X" about the sentence and offers the sentence
// itself as the only correct option among four.
func mcqQuestion(n int, sentence string) Question {
	return Question{
		Number: n,
		Text:   fmt.Sprintf("%d. ما هو %s؟", n, sentence),
		Options: []Option{
			{Text: sentence, IsCorrect: true},
			{Text: "غير " + sentence},
			{Text: "إجابة أخرى"},
			{Text: "لا أعرف"},
		},
	}
}

// trueFalseQuestion turns the sentence into a yes/no prompt. The صحيح
// option carries the correctness flag; no false statement is synthesized.
func trueFalseQuestion(n int, sentence string) Question {
	stmt := strings.TrimSpace(strings.TrimPrefix(sentence, "•"))
	stmt = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune(".,;:", r) {
			return r
		}
		return -1
	}, stmt)
	stmt = strings.TrimSpace(stmt)
	if !strings.HasSuffix(stmt, "?") {
		stmt += "?"
	}
	return Question{
		Number: n,
		Text:   fmt.Sprintf("%d. %s", n, stmt),
		Options: []Option{
			{Text: "صحيح", IsCorrect: true},
			{Text: "خطأ"},
		},
	}
}
