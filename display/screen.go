package display

import (
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/ymanor/hangman/game"
)

// Fixed row coordinates of the full-screen layout.
const (
	titleLine    = 0
	wordLine     = 1
	subtitleLine = 2
	usedLine     = 3
	inputLine    = 5
	messageLine  = 6
	drawingLine  = 7
)

// ErrScreenTooSmall is returned when the viewport cannot fit the board.
// It can happen mid-session if the terminal is shrunk; the session aborts
// and the caller restores the terminal before reporting it.
type ErrScreenTooSmall struct {
	MinRows int
}

func (e ErrScreenTooSmall) Error() string {
	return fmt.Sprintf("bad terminal height, please resize it to be at least %d lines", e.MinRows)
}

// MinScreenRows is the smallest viewport height the full-screen renderer
// will draw into: the fixed header rows plus the tallest gallows stage.
func MinScreenRows() int {
	return drawingLine + maxArtHeight()
}

// ScreenRenderer owns the terminal for the session and draws at fixed
// coordinates. Input is a single key-press per guess.
type ScreenRenderer struct {
	screen tcell.Screen
	style  tcell.Style
	closed bool
}

// NewScreen acquires the terminal. On any environment failure (no TTY,
// unsupported terminal, viewport too small) it returns an error and the
// caller falls back to the console renderer.
func NewScreen() (*ScreenRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	r := &ScreenRenderer{screen: screen, style: tcell.StyleDefault}
	if err := r.validateViewport(); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

func (r *ScreenRenderer) validateViewport() error {
	_, h := r.screen.Size()
	if min := MinScreenRows(); h < min {
		return ErrScreenTooSmall{MinRows: min}
	}
	return nil
}

func (r *ScreenRenderer) RenderBoard(snap game.Snapshot) error {
	if err := r.validateViewport(); err != nil {
		return err
	}
	r.screen.Clear()
	r.emitLine(wordLine, wordView(snap.MaskedLetters))
	r.emitLine(usedLine, usedView(snap.UsedLetters))
	r.emitArt(gallowsArt(snap.TriesLeft))
	r.screen.Show()
	return nil
}

func (r *ScreenRenderer) RenderEndOfGame(res game.Result) error {
	if err := r.validateViewport(); err != nil {
		return err
	}
	r.screen.Clear()
	if res.Won {
		r.emitLine(titleLine, youWonMsg)
		r.emitLine(wordLine, wordView([]rune(res.Word)))
	} else {
		r.emitLine(titleLine, youLostMsg)
		r.emitLine(subtitleLine, fmt.Sprintf(revealedWordMsg, wordView([]rune(res.Word))))
		r.emitArt(gallowsArt(res.TriesLeft))
	}
	r.emitLine(messageLine, exitMsg)
	r.screen.Show()
	_, err := r.waitForKey()
	return err
}

func (r *ScreenRenderer) RenderMessage(msg string) error {
	r.emitLine(messageLine, msg)
	r.screen.Show()
	return nil
}

// ReadInput shows the prompt and blocks for one key-press. Special keys
// come back under their names, which the game then rejects like any other
// bad input.
func (r *ScreenRenderer) ReadInput(prompt string) (string, error) {
	r.emitLine(inputLine, prompt)
	r.screen.Show()
	return r.waitForKey()
}

func (r *ScreenRenderer) waitForKey() (string, error) {
	for {
		switch ev := r.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				return string(ev.Rune()), nil
			case tcell.KeyCtrlC, tcell.KeyEscape:
				return "", io.EOF
			default:
				return ev.Name(), nil
			}
		case *tcell.EventResize:
			if err := r.validateViewport(); err != nil {
				return "", err
			}
			r.screen.Sync()
		case nil:
			// Screen was finalized under us.
			return "", errors.New("display surface closed")
		}
	}
}

// Close restores the terminal. Safe to call more than once; every exit
// path of the session runner goes through here before anything is printed.
func (r *ScreenRenderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.screen.Fini()
	return nil
}

// emitLine draws text at the start of row and blanks the rest of it, so a
// shorter message fully replaces a longer one drawn earlier.
func (r *ScreenRenderer) emitLine(row int, text string) {
	width, _ := r.screen.Size()
	col := 0
	for _, c := range text {
		r.screen.SetContent(col, row, c, nil, r.style)
		col++
	}
	for ; col < width; col++ {
		r.screen.SetContent(col, row, ' ', nil, r.style)
	}
}

func (r *ScreenRenderer) emitArt(art string) {
	row := drawingLine
	for _, line := range splitLines(art) {
		r.emitLine(row, line)
		row++
	}
}
