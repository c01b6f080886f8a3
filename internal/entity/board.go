package entity

type cell struct {
	symbol Symbol
	filled bool
}

// Board is the 3x3 grid. It stores symbols and doesn't enforce any game rule.
type Board struct {
	cells [BoardSize]cell
}

// Get - returns the symbol at index and whether the cell is filled.
func (that Board) Get(index BoardIndex) (Symbol, bool) {
	c := that.cells[index.value]
	return c.symbol, c.filled
}

func (that *Board) Set(index BoardIndex, symbol Symbol) {
	that.cells[index.value] = cell{symbol: symbol, filled: true}
}
