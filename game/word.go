// Package game encapsulates the mechanics of a hangman session: the secret
// word, the remaining-tries counter, the pool of guessable letters, and the
// controller that drives the round loop against a presentation port.
package game

import "strings"

// Word tracks the secret word and which of its letters have been guessed
// so far. The secret is uppercased on construction and never changes.
type Word struct {
	plain   string
	letters map[rune]struct{}
	guessed map[rune]struct{}
}

func NewWord(plain string) *Word {
	upper := strings.ToUpper(plain)
	letters := make(map[rune]struct{})
	for _, c := range upper {
		letters[c] = struct{}{}
	}
	return &Word{
		plain:   upper,
		letters: letters,
		guessed: make(map[rune]struct{}),
	}
}

// Guess marks letter as guessed if it occurs anywhere in the secret word,
// and reports whether it did. Guessing a correct letter twice is a no-op
// that still reports true.
func (w *Word) Guess(letter rune) bool {
	if _, ok := w.letters[letter]; !ok {
		return false
	}
	w.guessed[letter] = struct{}{}
	return true
}

// MaskedView returns one rune per position of the secret word: the letter
// where it has been guessed, '_' elsewhere. All occurrences of a guessed
// letter show at once.
func (w *Word) MaskedView() []rune {
	view := make([]rune, 0, len(w.plain))
	for _, c := range w.plain {
		if _, ok := w.guessed[c]; ok {
			view = append(view, c)
		} else {
			view = append(view, '_')
		}
	}
	return view
}

func (w *Word) IsFullyGuessed() bool {
	// guessed is only ever populated from letters, so comparing sizes
	// compares the sets.
	return len(w.guessed) == len(w.letters)
}

// Reveal marks every letter of the word as guessed. Used when the game is
// lost, so the final board shows the answer.
func (w *Word) Reveal() {
	for c := range w.letters {
		w.guessed[c] = struct{}{}
	}
}

// Plain returns the uppercased secret word.
func (w *Word) Plain() string {
	return w.plain
}
