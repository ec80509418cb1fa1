package game

import "errors"

// ErrAlreadyHanged is returned when a try is consumed after the budget hit
// zero. The controller stops the game before this can happen; seeing it
// means the session state is corrupt.
var ErrAlreadyHanged = errors.New("man is already hanged, no tries left to consume")

// Man is the remaining-tries counter. Each wrong guess brings him one step
// closer to hanging; at zero the game is lost.
type Man struct {
	remaining int
}

func NewMan(tries int) *Man {
	if tries < 0 {
		tries = 0
	}
	return &Man{remaining: tries}
}

func (m *Man) Remaining() int {
	return m.remaining
}

func (m *Man) IsHanged() bool {
	return m.remaining == 0
}

func (m *Man) BringCloserToHanging() error {
	if m.remaining == 0 {
		return ErrAlreadyHanged
	}
	m.remaining--
	return nil
}
