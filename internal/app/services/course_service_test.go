package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastapp/tast-backend/internal/quizgen"
)

func TestEncodeQuestionsPreservesArabic(t *testing.T) {
	questions := []quizgen.Question{
		{
			Number: 1,
			Text:   "1. ما هو عاصمة فرنسا هي باريس؟",
			Options: []quizgen.Option{
				{Text: "عاصمة فرنسا هي باريس", IsCorrect: true},
				{Text: "غير عاصمة فرنسا هي باريس"},
				{Text: "إجابة أخرى"},
				{Text: "لا أعرف"},
			},
		},
	}

	encoded, err := encodeQuestions(questions)
	require.NoError(t, err)

	// Arabic text must be stored verbatim, not as \uXXXX escapes
	assert.Contains(t, string(encoded), "ما هو عاصمة فرنسا")
	assert.NotContains(t, string(encoded), `\u`)
	// The encoder's trailing newline must not leak into the stored blob
	assert.False(t, strings.HasSuffix(string(encoded), "\n"))
}

func TestEncodeDecodeQuestionsRoundTrip(t *testing.T) {
	questions := []quizgen.Question{
		{
			Number: 1,
			Text:   "1. الماء يغلي عند مئة درجة مئوية?",
			Options: []quizgen.Option{
				{Text: "صحيح", IsCorrect: true},
				{Text: "خطأ"},
			},
		},
		{
			Number: 2,
			Text:   "2. الأرض تدور حول الشمس مرة كل عام?",
			Options: []quizgen.Option{
				{Text: "صحيح", IsCorrect: true},
				{Text: "خطأ"},
			},
		},
	}

	encoded, err := encodeQuestions(questions)
	require.NoError(t, err)

	decoded, err := decodeQuestions(string(encoded))
	require.NoError(t, err)
	assert.Equal(t, questions, decoded)
}

func TestDecodeQuestionsRejectsGarbage(t *testing.T) {
	_, err := decodeQuestions("{not json")
	assert.Error(t, err)
}

func TestBuildQuestionsEmptyTextIsNotAnError(t *testing.T) {
	questions, encoded, err := buildQuestions("", 5, quizgen.TypeMCQ)
	require.NoError(t, err)
	assert.Empty(t, questions)
	assert.Equal(t, "[]", string(encoded))
}

func TestBuildQuestionsShortSentencesYieldEmptyQuiz(t *testing.T) {
	// Every sentence is at or below the minimum length, so none seed a
	// question; the course is still created with an empty quiz upstream
	questions, encoded, err := buildQuestions("مقدمة. الفصل الأول. خاتمة.", 3, quizgen.TypeTrueFalse)
	require.NoError(t, err)
	assert.Empty(t, questions)
	assert.Equal(t, "[]", string(encoded))

	decoded, err := decodeQuestions(string(encoded))
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestBuildQuestionsStoredCountBelowRequested(t *testing.T) {
	sentences := []string{
		"عاصمة فرنسا هي باريس كما هو معروف للجميع",
		"الماء يغلي عند مئة درجة مئوية في الظروف العادية",
	}
	text := strings.Join(sentences, ". ") + ". "

	questions, _, err := buildQuestions(text, 5, quizgen.TypeMCQ)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, 1, questions[0].Number)
	assert.Equal(t, 2, questions[1].Number)
}
