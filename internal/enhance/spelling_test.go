package enhance

import (
	"strings"
	"testing"
)

func TestCorrectCasePreservation(t *testing.T) {
	corrected, corrections := Correct("Recieve this")

	if !strings.Contains(corrected, "Receive") {
		t.Errorf("Expected corrected text to contain 'Receive', got %q", corrected)
	}

	if len(corrections) != 1 {
		t.Fatalf("Expected 1 correction, got %d", len(corrections))
	}
	if corrections[0].Original != "Recieve" || corrections[0].Replacement != "Receive" {
		t.Errorf("Expected correction (Recieve, Receive), got (%s, %s)",
			corrections[0].Original, corrections[0].Replacement)
	}
}

func TestCorrectLowercase(t *testing.T) {
	corrected, corrections := Correct("please recieve the package")

	if corrected != "please receive the package" {
		t.Errorf("Unexpected corrected text: %q", corrected)
	}
	if len(corrections) != 1 {
		t.Fatalf("Expected 1 correction, got %d", len(corrections))
	}
	if corrections[0].Replacement != "receive" {
		t.Errorf("Expected lowercase replacement, got %q", corrections[0].Replacement)
	}
}

func TestCorrectIdempotent(t *testing.T) {
	input := "I will definately recieve seperate feedback untill tommorrow"

	once, firstCorrections := Correct(input)
	twice, secondCorrections := Correct(once)

	if once != twice {
		t.Errorf("Correction is not idempotent: %q != %q", once, twice)
	}
	if len(firstCorrections) != 4 {
		t.Errorf("Expected 4 corrections on first pass, got %d", len(firstCorrections))
	}
	if len(secondCorrections) != 0 {
		t.Errorf("Expected no corrections on second pass, got %d", len(secondCorrections))
	}
}

func TestCorrectReportsEveryOccurrence(t *testing.T) {
	_, corrections := Correct("recieve and Recieve and recieve")

	if len(corrections) != 3 {
		t.Fatalf("Expected 3 corrections (one per occurrence), got %d", len(corrections))
	}
	if corrections[1].Original != "Recieve" || corrections[1].Replacement != "Receive" {
		t.Errorf("Expected middle occurrence to stay capitalized, got (%s, %s)",
			corrections[1].Original, corrections[1].Replacement)
	}
}

func TestCorrectWholeWordOnly(t *testing.T) {
	// "alot" inside a longer word must not match.
	corrected, corrections := Correct("zealotry is not alot")

	if !strings.HasPrefix(corrected, "zealotry") {
		t.Errorf("Whole-word match corrupted a longer word: %q", corrected)
	}
	if corrected != "zealotry is not a lot" {
		t.Errorf("Unexpected corrected text: %q", corrected)
	}
	if len(corrections) != 1 {
		t.Errorf("Expected 1 correction, got %d", len(corrections))
	}
}

func TestCorrectNoMatches(t *testing.T) {
	input := "A perfectly spelled sentence."
	corrected, corrections := Correct(input)

	if corrected != input {
		t.Errorf("Text changed without any misspellings: %q", corrected)
	}
	if len(corrections) != 0 {
		t.Errorf("Expected no corrections, got %d", len(corrections))
	}
}

func TestCorrectLexiconOrder(t *testing.T) {
	// "acheive" precedes "recieve" in the lexicon regardless of text position.
	_, corrections := Correct("recieve then acheive")

	if len(corrections) != 2 {
		t.Fatalf("Expected 2 corrections, got %d", len(corrections))
	}
	if corrections[0].Original != "acheive" {
		t.Errorf("Expected lexicon-ordered corrections, first was %q", corrections[0].Original)
	}
}
