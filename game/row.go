package game

import "strings"

// Row is one line of pegs on the board: the secret code or a single guess
type Row [CodeLength]Peg

func (row Row) String() string {
	names := make([]string, len(row))
	for i, peg := range row {
		names[i] = peg.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

func (row Row) MarshalYAML() (interface{}, error) {
	names := make([]string, len(row))
	for i, peg := range row {
		names[i] = peg.String()
	}
	return names, nil
}

// RowBuilder stages the pegs of the next guess, filled left to right
type RowBuilder struct {
	line   Row
	cursor int
}

func NewRowBuilder() *RowBuilder {
	return &RowBuilder{}
}

// Line returns the pegs placed so far, Empty where none has been placed
func (builder *RowBuilder) Line() Row {
	return builder.line
}

func (builder *RowBuilder) Len() int {
	return builder.cursor
}

// AddPeg places a peg in the next free slot; a full row is left unchanged
func (builder *RowBuilder) AddPeg(peg Peg) {
	if builder.cursor >= CodeLength {
		return
	}
	builder.line[builder.cursor] = peg
	builder.cursor++
}

// Backspace removes the last placed peg. On an empty row it only clears the
// first slot.
func (builder *RowBuilder) Backspace() {
	if builder.cursor > 0 {
		builder.cursor--
	}
	builder.line[builder.cursor] = Empty
}

func (builder *RowBuilder) Reset() {
	builder.line = Row{}
	builder.cursor = 0
}

// IsComplete only checks the last slot, which is enough because pegs are
// always placed left to right.
func (builder *RowBuilder) IsComplete() bool {
	return builder.line[CodeLength-1] != Empty
}
