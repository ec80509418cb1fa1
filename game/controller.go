package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	requestInputMsg   = "Please Guess a character: "
	emptyInputMsg     = "You must insert a character to continue!"
	multiCharInputMsg = "Please insert one character only!"
	alreadyGuessedMsg = "%c was already guessed!"
	invalidInputMsg   = "%s is an invalid option!"
)

type State int

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Controller drives the round loop: render the board, read and validate a
// guess, apply it, repeat until the word is fully guessed or the tries run
// out. Both terminal states are absorbing; the loop halts on the first one
// reached.
type Controller struct {
	word     *Word
	man      *Man
	pool     *CharacterPool
	renderer Renderer
}

func NewController(secret string, maxTries int, renderer Renderer) *Controller {
	return &Controller{
		word:     NewWord(secret),
		man:      NewMan(maxTries),
		pool:     NewCharacterPool(),
		renderer: renderer,
	}
}

// State derives the session state. It is never stored; a misconfigured
// zero-try session is lost before any round is played.
func (c *Controller) State() State {
	switch {
	case c.word.IsFullyGuessed():
		return Won
	case c.man.IsHanged():
		return Lost
	default:
		return InProgress
	}
}

// Play runs rounds until the game is over, then renders the end-of-game
// view. User input errors never escape the round loop; any error returned
// here is either a renderer failure or a state-corruption defect.
func (c *Controller) Play() error {
	for c.State() == InProgress {
		if err := c.playRound(); err != nil {
			return err
		}
	}
	return c.endGame()
}

func (c *Controller) playRound() error {
	if err := c.renderer.RenderBoard(c.snapshot()); err != nil {
		return err
	}
	letter, err := c.validGuess()
	if err != nil {
		return err
	}
	correct := c.word.Guess(letter)
	log.Debug().Str("guess", string(letter)).Bool("correct", correct).Msg("guess applied")
	if !correct {
		if err := c.man.BringCloserToHanging(); err != nil {
			return err
		}
	}
	return c.pool.MarkUsed(letter)
}

// validGuess re-prompts until one letter is accepted. Each rejection
// renders its message and loops.
func (c *Controller) validGuess() (rune, error) {
	for {
		raw, err := c.renderer.ReadInput(requestInputMsg)
		if err != nil {
			return 0, err
		}
		letter, reject := c.classify(Normalize(raw))
		if reject == "" {
			return letter, nil
		}
		if err := c.renderer.RenderMessage(reject); err != nil {
			return 0, err
		}
	}
}

// classify runs the validity checks in precedence order, first match wins:
// empty, more than one character, not a letter of the alphabet, already
// guessed. An accepted guess comes back with an empty rejection message.
func (c *Controller) classify(guess string) (rune, string) {
	runes := []rune(guess)
	if len(runes) == 0 {
		return 0, emptyInputMsg
	}
	if len(runes) > 1 {
		return 0, multiCharInputMsg
	}
	letter := runes[0]
	if letter < 'A' || letter > 'Z' {
		return 0, fmt.Sprintf(invalidInputMsg, guess)
	}
	if c.pool.IsUsed(letter) {
		return 0, fmt.Sprintf(alreadyGuessedMsg, letter)
	}
	return letter, ""
}

func (c *Controller) endGame() error {
	state := c.State()
	if state == Lost {
		c.word.Reveal()
	}
	log.Info().Stringer("state", state).Str("word", c.word.Plain()).Msg("game over")
	return c.renderer.RenderEndOfGame(Result{
		Won:       state == Won,
		Word:      c.word.Plain(),
		TriesLeft: c.man.Remaining(),
	})
}

func (c *Controller) snapshot() Snapshot {
	return Snapshot{
		MaskedLetters: c.word.MaskedView(),
		TriesLeft:     c.man.Remaining(),
		UsedLetters:   c.pool.UsedLetters(),
	}
}
