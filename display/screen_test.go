package display

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ymanor/hangman/game"
)

func newSimRenderer(t *testing.T, width, height int) (*ScreenRenderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(width, height)
	r := &ScreenRenderer{screen: sim, style: tcell.StyleDefault}
	t.Cleanup(func() { r.Close() })
	return r, sim
}

// simRow reads back one row of the simulated screen as a string.
func simRow(sim tcell.SimulationScreen, row int) string {
	cells, width, _ := sim.GetContents()
	var sb strings.Builder
	for col := 0; col < width; col++ {
		cell := cells[row*width+col]
		if len(cell.Runes) == 0 {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(cell.Runes[0])
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestRenderBoardFailsOnShortViewport(t *testing.T) {
	r, _ := newSimRenderer(t, 80, MinScreenRows()-1)

	err := r.RenderBoard(game.Snapshot{
		MaskedLetters: []rune{'_', '_', '_'},
		TriesLeft:     10,
	})
	var tooSmall ErrScreenTooSmall
	assert.ErrorAs(t, err, &tooSmall)
	assert.Equal(t, MinScreenRows(), tooSmall.MinRows)
}

func TestRenderBoardOnTallViewport(t *testing.T) {
	r, sim := newSimRenderer(t, 80, MinScreenRows())

	err := r.RenderBoard(game.Snapshot{
		MaskedLetters: []rune{'_', 'A', '_'},
		TriesLeft:     9,
		UsedLetters:   []rune{'A', 'Z'},
	})
	assert.NoError(t, err)
	assert.Equal(t, "_ A _", simRow(sim, wordLine))
	assert.Equal(t, "Used: A Z", simRow(sim, usedLine))
}

func TestRenderBoardFailsAfterViewportShrinks(t *testing.T) {
	r, sim := newSimRenderer(t, 80, MinScreenRows())

	snap := game.Snapshot{MaskedLetters: []rune{'_'}, TriesLeft: 10}
	assert.NoError(t, r.RenderBoard(snap))

	sim.SetSize(80, MinScreenRows()-1)
	var tooSmall ErrScreenTooSmall
	assert.ErrorAs(t, r.RenderBoard(snap), &tooSmall)
}

func TestRenderMessageReplacesLongerMessage(t *testing.T) {
	r, sim := newSimRenderer(t, 80, MinScreenRows())

	assert.NoError(t, r.RenderMessage("Please insert one character only!"))
	assert.NoError(t, r.RenderMessage("5 is an invalid option!"))
	assert.Equal(t, "5 is an invalid option!", simRow(sim, messageLine))
}
