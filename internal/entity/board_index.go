package entity

import (
	"fmt"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const BoardSize = 9

// BoardIndex is a cell index in the range 0..9, counted left-to-right, top-to-bottom.
type BoardIndex struct {
	value uint8
}

// IndexOutOfRangeError is returned when a value can't be used as a BoardIndex.
type IndexOutOfRangeError struct {
	Value int
}

func (that *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("invalid index: %d. A board index must be in the range of 0..%d", that.Value, BoardSize)
}

func (that *IndexOutOfRangeError) Unwrap() error {
	return apperror.ErrIndexOutOfRange
}

// NewBoardIndex - validates value and wraps it into a BoardIndex.
func NewBoardIndex(value int) (BoardIndex, error) {
	if value < 0 || value >= BoardSize {
		return BoardIndex{}, &IndexOutOfRangeError{Value: value}
	}

	return BoardIndex{value: uint8(value)}, nil
}

// boardIndex skips the range check, value must be a known-valid constant.
func boardIndex(value uint8) BoardIndex {
	return BoardIndex{value: value}
}

func (that BoardIndex) Int() int {
	return int(that.value)
}

func (that BoardIndex) String() string {
	return strconv.Itoa(int(that.value))
}
