// Package render is the pure presentation core for leak traces. It maps a
// flat position space onto heterogeneous row kinds, computes the connector
// category joining consecutive rows, and builds styled row text as plain
// strings annotated with span ranges. It holds no state and performs no I/O;
// callers bind the results to whatever widget toolkit they use.
package render

import (
	"fmt"

	"leakview/internal/trace"
)

// HeaderRowCount is the number of rows before the first trace element:
// one header row with the group description, and one help connector row.
const HeaderRowCount = 2

// Row is the kind of row at a given position. Callers type-switch on the
// concrete type instead of re-deriving indices from the position.
type Row interface {
	isRow()
}

// HeaderRow is the single row at position 0 showing the group description.
type HeaderRow struct{}

// ConnectorRow is one row per trace element, plus the help row at position 1.
// The help row has Help set and carries no element; ElementIndex is -1 there.
type ConnectorRow struct {
	ElementIndex int
	Help         bool
}

// SummaryRow is one row per previously recorded leaking instance.
type SummaryRow struct {
	SummaryIndex int
}

func (HeaderRow) isRow()    {}
func (ConnectorRow) isRow() {}
func (SummaryRow) isRow()   {}

// TotalRowCount returns the number of rows for a trace of elementCount
// elements and summaryCount recorded instances.
func TotalRowCount(elementCount, summaryCount int) int {
	checkCounts(elementCount, summaryCount)
	return HeaderRowCount + elementCount + summaryCount
}

// RowAt maps a flat position onto its row kind. Every position in
// [0, TotalRowCount) maps to exactly one kind; anything outside is a
// caller contract violation and panics.
func RowAt(position, elementCount, summaryCount int) Row {
	total := TotalRowCount(elementCount, summaryCount)
	if position < 0 || position >= total {
		panic(fmt.Sprintf("render: position %d out of range [0, %d)", position, total))
	}
	switch {
	case position == 0:
		return HeaderRow{}
	case position == HeaderRowCount-1:
		return ConnectorRow{ElementIndex: -1, Help: true}
	case position < HeaderRowCount+elementCount:
		return ConnectorRow{ElementIndex: position - HeaderRowCount}
	default:
		return SummaryRow{SummaryIndex: position - HeaderRowCount - elementCount}
	}
}

// ElementIndex returns the trace element index for a connector row position.
// Valid only for positions holding a non-help ConnectorRow.
func ElementIndex(position, elementCount, summaryCount int) int {
	row, ok := RowAt(position, elementCount, summaryCount).(ConnectorRow)
	if !ok || row.Help {
		panic(fmt.Sprintf("render: position %d is not an element row", position))
	}
	return row.ElementIndex
}

// SummaryIndex returns the instance summary index for a summary row position.
func SummaryIndex(position, elementCount, summaryCount int) int {
	row, ok := RowAt(position, elementCount, summaryCount).(SummaryRow)
	if !ok {
		panic(fmt.Sprintf("render: position %d is not a summary row", position))
	}
	return row.SummaryIndex
}

// IsFirstConnectorRow reports whether position is the help row: a
// connector-kind row that carries explanatory text instead of element data.
func IsFirstConnectorRow(position int) bool {
	return position == HeaderRowCount-1
}

func checkCounts(elementCount, summaryCount int) {
	if elementCount < 1 {
		panic(fmt.Sprintf("render: trace must have at least one element, got %d", elementCount))
	}
	if summaryCount < 0 {
		panic(fmt.Sprintf("render: summary count cannot be negative, got %d", summaryCount))
	}
}

func checkStatus(s trace.LeakStatus, elementIndex int) {
	if !s.Valid() {
		panic(fmt.Sprintf("render: element %d has invalid leak status %d", elementIndex, int(s)))
	}
}
