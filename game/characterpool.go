package game

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// ErrLetterNotAvailable is returned when a letter is marked used without
// being in the unused set. The controller validates guesses before applying
// them, so this signals a logic defect rather than bad user input.
var ErrLetterNotAvailable = errors.New("letter is not available in the pool")

// CharacterPool partitions the alphabet into letters not yet tried and
// letters already tried. Every letter is in exactly one of the two sets.
type CharacterPool struct {
	unused map[rune]struct{}
	used   map[rune]struct{}
}

func NewCharacterPool() *CharacterPool {
	unused := make(map[rune]struct{}, 26)
	for c := 'A'; c <= 'Z'; c++ {
		unused[c] = struct{}{}
	}
	return &CharacterPool{
		unused: unused,
		used:   make(map[rune]struct{}, 26),
	}
}

// Normalize trims surrounding whitespace and uppercases raw input. It does
// not check length or alphabet membership; the controller does that.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// MarkUsed moves letter from the unused set to the used set.
func (p *CharacterPool) MarkUsed(letter rune) error {
	if _, ok := p.unused[letter]; !ok {
		return fmt.Errorf("%w: %c", ErrLetterNotAvailable, letter)
	}
	delete(p.unused, letter)
	p.used[letter] = struct{}{}
	return nil
}

func (p *CharacterPool) IsUnused(letter rune) bool {
	_, ok := p.unused[letter]
	return ok
}

func (p *CharacterPool) IsUsed(letter rune) bool {
	_, ok := p.used[letter]
	return ok
}

// UsedLetters returns the tried letters in alphabetical order, for display.
func (p *CharacterPool) UsedLetters() []rune {
	letters := lo.Keys(p.used)
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}
