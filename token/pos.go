package token

import "fmt"

// Pos is a position in a document. Row starts at 1; Col counts the
// characters consumed on the row, so it is the column of the last
// character read. Off is the byte offset of the next unread byte.
type Pos struct {
	Row int
	Col int
	Off int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, col %d", p.Row, p.Col)
}
