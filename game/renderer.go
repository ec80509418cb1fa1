package game

// Snapshot is everything a renderer needs to draw the board between
// rounds.
type Snapshot struct {
	MaskedLetters []rune
	TriesLeft     int
	UsedLetters   []rune
}

// Result describes a finished game for the end-of-game screen. Word is the
// full secret word; on a loss it has already been revealed.
type Result struct {
	Won       bool
	Word      string
	TriesLeft int
}

// Renderer is the presentation port. The controller drives any surface
// that satisfies it; the display package provides a line-based console
// variant and a full-screen variant.
type Renderer interface {
	RenderBoard(snap Snapshot) error
	RenderEndOfGame(res Result) error
	RenderMessage(msg string) error
	ReadInput(prompt string) (string, error)
	// Close releases the surface and restores the terminal. It must be
	// safe to call on every exit path, including after a render error.
	Close() error
}
