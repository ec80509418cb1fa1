package display

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/ymanor/hangman/game"
)

// ConsoleRenderer is the line-based surface: full lines out, one line of
// input per prompt. It is also the fallback when the full-screen surface
// cannot initialize.
type ConsoleRenderer struct {
	l      *readline.Instance
	w      io.Writer
	closed bool
}

func NewConsole() (*ConsoleRenderer, error) {
	l, err := readline.NewEx(&readline.Config{
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &ConsoleRenderer{l: l, w: l.Stdout()}, nil
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (r *ConsoleRenderer) RenderBoard(snap game.Snapshot) error {
	showMessage(wordView(snap.MaskedLetters), r.w)
	showMessage(triesView(snap.TriesLeft), r.w)
	if used := usedView(snap.UsedLetters); used != "" {
		showMessage(used, r.w)
	}
	return nil
}

func (r *ConsoleRenderer) RenderEndOfGame(res game.Result) error {
	if res.Won {
		showMessage(wordView([]rune(res.Word)), r.w)
		showMessage(youWonMsg, r.w)
	} else {
		showMessage(youLostMsg, r.w)
		showMessage(fmt.Sprintf(revealedWordMsg, wordView([]rune(res.Word))), r.w)
	}
	return nil
}

func (r *ConsoleRenderer) RenderMessage(msg string) error {
	showMessage(msg, r.w)
	return nil
}

// ReadInput reads one full line. Interrupt and EOF surface as errors so
// the session ends instead of re-prompting forever.
func (r *ConsoleRenderer) ReadInput(prompt string) (string, error) {
	r.l.SetPrompt(prompt)
	line, err := r.l.Readline()
	if err == readline.ErrInterrupt {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

func (r *ConsoleRenderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.l.Close()
}
