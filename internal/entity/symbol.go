package entity

// Symbol is the mark a player puts on the board.
type Symbol uint8

const (
	Cross Symbol = iota
	Circle
)

// Toggle - switches the symbol to the opponent's one.
func (that *Symbol) Toggle() {
	if *that == Cross {
		*that = Circle
		return
	}
	*that = Cross
}

func (that Symbol) String() string {
	if that == Circle {
		return "O"
	}
	return "X"
}
