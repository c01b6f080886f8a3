package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	emptyCell    = "   "
	cellSep      = "|"
	rowSeparator = "\n-----------\n"
)

// WinCombos lists rows, then columns, then diagonals.
var WinCombos = [8][3]BoardIndex{
	{boardIndex(0), boardIndex(1), boardIndex(2)},
	{boardIndex(3), boardIndex(4), boardIndex(5)},
	{boardIndex(6), boardIndex(7), boardIndex(8)},
	{boardIndex(0), boardIndex(3), boardIndex(6)},
	{boardIndex(1), boardIndex(4), boardIndex(7)},
	{boardIndex(2), boardIndex(5), boardIndex(8)},
	{boardIndex(0), boardIndex(4), boardIndex(8)},
	{boardIndex(2), boardIndex(4), boardIndex(6)},
}

// PositionAlreadyFullError is returned when a turn targets a filled cell.
type PositionAlreadyFullError struct {
	Index BoardIndex
}

func (that *PositionAlreadyFullError) Error() string {
	return fmt.Sprintf("invalid board index %s, already full", that.Index)
}

func (that *PositionAlreadyFullError) Unwrap() error {
	return apperror.ErrPositionAlreadyFull
}

// Game holds the board and the symbol that moves next. The zero value is a new game with Cross to move.
type Game struct {
	board Board
	turn  Symbol
}

func NewGame() *Game {
	return &Game{turn: Cross}
}

// PlayTurn - puts the current symbol on index and passes the turn.
func (that *Game) PlayTurn(index BoardIndex) error {
	if _, filled := that.board.Get(index); filled {
		return &PositionAlreadyFullError{Index: index}
	}

	that.board.Set(index, that.turn)
	that.turn.Toggle()

	return nil
}

// HasWinner - returns the symbol that completed a line. A full board without a line reports no winner.
func (that *Game) HasWinner() (Symbol, bool) {
	for _, combo := range WinCombos {
		a, okA := that.board.Get(combo[0])
		b, okB := that.board.Get(combo[1])
		c, okC := that.board.Get(combo[2])

		if okA && okB && okC && a == b && b == c {
			return a, true
		}
	}

	return Cross, false
}

func (that *Game) Turn() Symbol {
	return that.turn
}

// Board - returns a copy of the grid.
func (that *Game) Board() Board {
	return that.board
}

// Format - renders the grid, symbolFn decides how a symbol is printed.
func (that *Game) Format(symbolFn func(Symbol) string) string {
	var sb strings.Builder

	for i := uint8(0); i < BoardSize; i++ {
		if symbol, filled := that.board.Get(boardIndex(i)); filled {
			sb.WriteString(" " + symbolFn(symbol) + " ")
		} else {
			sb.WriteString(emptyCell)
		}

		switch {
		case i == BoardSize-1:
		case i%3 == 2:
			sb.WriteString(rowSeparator)
		default:
			sb.WriteString(cellSep)
		}
	}

	return sb.String()
}

func (that *Game) String() string {
	return that.Format(Symbol.String)
}
