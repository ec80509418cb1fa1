// Package display provides the two rendering surfaces for a hangman
// session: a line-based console renderer and a full-screen renderer. Both
// satisfy game.Renderer; the game never sees which one it is talking to.
package display

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	youWonMsg       = "You Won!"
	youLostMsg      = "You lost :("
	revealedWordMsg = "Word was: %s"
	exitMsg         = "Press any key to exit."
)

// wordView spaces out the letters of a masked (or revealed) word, e.g.
// "C A _".
func wordView(letters []rune) string {
	return strings.Join(lo.Map(letters, func(c rune, _ int) string {
		return string(c)
	}), " ")
}

// usedView lists the tried letters, or nothing before the first guess.
func usedView(used []rune) string {
	if len(used) == 0 {
		return ""
	}
	return "Used: " + wordView(used)
}

func triesView(triesLeft int) string {
	return fmt.Sprintf("Tries Left: %d", triesLeft)
}
