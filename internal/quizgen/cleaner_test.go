package quizgen

import (
	"slices"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

func collect(raw string) []string {
	var out []string
	for s := range Sentences(raw) {
		out = append(out, s)
	}
	return out
}

func TestSentencesSplitsOnPeriodSpace(t *testing.T) {
	raw := "The mitochondria is the powerhouse of the cell. Photosynthesis converts light into chemical energy. short."
	got := collect(raw)
	want := []string{
		"The mitochondria is the powerhouse of the cell",
		"Photosynthesis converts light into chemical energy",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Sentences: want=%q got=%q", want, got)
	}
}

func TestSentencesStripsListMarkers(t *testing.T) {
	raw := "• 1. The water cycle describes continuous water movement. 2. Evaporation turns liquid water into vapor above oceans."
	got := collect(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %q", len(got), got)
	}
	for _, s := range got {
		if strings.HasPrefix(s, "•") || unicode.IsDigit([]rune(s)[0]) {
			t.Errorf("list marker not stripped: %q", s)
		}
	}
}

func TestSentencesDropsDisallowedCharacters(t *testing.T) {
	raw := "Water boils at 100 degrees @ sea level [under #normal pressure]! It freezes at zero;\r\nwhich is well known everywhere. tail"
	for _, s := range collect(raw) {
		for _, r := range s {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
				continue
			}
			if strings.ContainsRune(allowedPunct, r) {
				continue
			}
			t.Errorf("disallowed rune %q survived in %q", r, s)
		}
	}
}

func TestSentencesDiscardsShortUnits(t *testing.T) {
	raw := "Tiny. Also small one. This sentence is clearly longer than twenty characters. ok"
	got := collect(raw)
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d: %q", len(got), got)
	}
	for _, s := range got {
		if utf8.RuneCountInString(s) <= minSentenceLen {
			t.Errorf("short sentence survived: %q", s)
		}
	}
}

func TestSentencesCollapsesWhitespace(t *testing.T) {
	raw := "A sentence   with\nirregular\r\n  spacing that still counts. x"
	got := collect(raw)
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d: %q", len(got), got)
	}
	if strings.Contains(got[0], "  ") || strings.ContainsAny(got[0], "\n\r") {
		t.Errorf("whitespace not collapsed: %q", got[0])
	}
}

func TestSentencesArabicTextSurvives(t *testing.T) {
	raw := "تصف دورة الماء حركة المياه المستمرة في الطبيعة. قصير"
	got := collect(raw)
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d: %q", len(got), got)
	}
	if !strings.Contains(got[0], "دورة الماء") {
		t.Errorf("arabic content mangled: %q", got[0])
	}
}

func TestSentencesRestartable(t *testing.T) {
	raw := "The first long sentence about biology and cells. The second long sentence about chemistry and atoms. x"
	seq := Sentences(raw)
	first := make([]string, 0, 2)
	for s := range seq {
		first = append(first, s)
	}
	second := make([]string, 0, 2)
	for s := range seq {
		second = append(second, s)
	}
	if !slices.Equal(first, second) {
		t.Fatalf("sequence not restartable: first=%q second=%q", first, second)
	}
}

func TestSentencesEmptyInput(t *testing.T) {
	if got := collect(""); len(got) != 0 {
		t.Fatalf("expected no sentences, got %q", got)
	}
}

func TestSentencesEarlyBreak(t *testing.T) {
	raw := "The first long sentence about biology and cells. The second long sentence about chemistry and atoms. x"
	n := 0
	for range Sentences(raw) {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("early break consumed %d sentences", n)
	}
}
