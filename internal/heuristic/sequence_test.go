package heuristic

import (
	"testing"

	"github.com/dgallion1/outliner/internal/outline"
)

func candidate(text string, page int, y float64, level outline.Level) outline.HeadingCandidate {
	return outline.HeadingCandidate{
		Span:  outline.TextSpan{Text: text, Page: page, Y: y, FontSize: 14, PageHeight: 800},
		Level: level,
	}
}

func TestSequence_ReadingOrder(t *testing.T) {
	entries := Sequence([]outline.HeadingCandidate{
		candidate("2. Second Chapter", 2, 100, outline.LevelH1),
		candidate("1.2 Lower On Page", 1, 500, outline.LevelH2),
		candidate("1. First Chapter", 1, 80, outline.LevelH1),
	}, DefaultRules())

	want := []string{"1. First Chapter", "1.2 Lower On Page", "2. Second Chapter"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i].Text != w {
			t.Errorf("entry[%d]: expected %q, got %q", i, w, entries[i].Text)
		}
	}
}

func TestSequence_SamePageDuplicateSuppressed(t *testing.T) {
	// A running header re-rendered per line shows up as repeated spans on
	// the same page; only the first may survive.
	entries := Sequence([]outline.HeadingCandidate{
		candidate("Pathway Options", 3, 60, outline.LevelH1),
		candidate("Pathway Options", 3, 400, outline.LevelH1),
		candidate("Pathway Options", 3, 700, outline.LevelH1),
	}, DefaultRules())

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after dedup, got %d", len(entries))
	}
	if entries[0].Page != 3 {
		t.Errorf("expected page 3, got %d", entries[0].Page)
	}
}

func TestSequence_NormalizedDedupKey(t *testing.T) {
	// Case and whitespace variants collapse to one key.
	entries := Sequence([]outline.HeadingCandidate{
		candidate("Pathway  Options", 1, 100, outline.LevelH1),
		candidate("pathway options", 1, 300, outline.LevelH2),
	}, DefaultRules())

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Text != "Pathway  Options" {
		t.Errorf("first occurrence should win, got %q", entries[0].Text)
	}
}

func TestSequence_SameTextOnDifferentPagesKept(t *testing.T) {
	entries := Sequence([]outline.HeadingCandidate{
		candidate("Summary", 1, 100, outline.LevelH2),
		candidate("Summary", 4, 100, outline.LevelH2),
	}, DefaultRules())

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries across pages, got %d", len(entries))
	}
}

func TestSequence_DanglingConjunctionDropped(t *testing.T) {
	entries := Sequence([]outline.HeadingCandidate{
		candidate("Planning and", 1, 100, outline.LevelH2),
		candidate("1. Real Heading", 1, 200, outline.LevelH1),
	}, DefaultRules())

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Text != "1. Real Heading" {
		t.Errorf("expected the real heading to survive, got %q", entries[0].Text)
	}
}

func TestSequence_ShortMixedCaseSingleWordDropped(t *testing.T) {
	entries := Sequence([]outline.HeadingCandidate{
		candidate("eMail", 1, 100, outline.LevelH3),
		candidate("APPENDIX", 1, 200, outline.LevelH1),
	}, DefaultRules())

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Text != "APPENDIX" {
		t.Errorf("expected the all-caps word to survive, got %q", entries[0].Text)
	}
}
