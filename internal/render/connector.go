package render

import (
	"fmt"

	"leakview/internal/trace"
)

// Connector is the visual category of the line joining consecutive rows.
// The chain renders top to bottom as root, known-safe references, the leak
// boundary, confirmed-leaking references, and finally the leaked object;
// the category encodes where in that progression a row sits.
type Connector int

const (
	// ConnectorHelp is the explanatory row above a single leak trace.
	ConnectorHelp Connector = iota
	// ConnectorHelpLeakGroup is the explanatory row above a leak group.
	ConnectorHelpLeakGroup
	// ConnectorStart is the root element when the chain below it is still
	// known good.
	ConnectorStart
	// ConnectorStartLastReachable is the root element when it is also the
	// last element confirmed reachable.
	ConnectorStartLastReachable
	// ConnectorNodeUnknown is an interior element with an undetermined verdict.
	ConnectorNodeUnknown
	// ConnectorNodeReachable is an interior element inside the known-good chain.
	ConnectorNodeReachable
	// ConnectorNodeLastReachable is the boundary element just before the
	// leak begins.
	ConnectorNodeLastReachable
	// ConnectorNodeFirstUnreachable is the boundary element where leaking begins.
	ConnectorNodeFirstUnreachable
	// ConnectorNodeUnreachable is an interior element inside the leaking chain.
	ConnectorNodeUnreachable
	// ConnectorEnd is the leaked object below a confirmed-leaking predecessor.
	ConnectorEnd
	// ConnectorEndFirstUnreachable is the leaked object when leaking begins at it.
	ConnectorEndFirstUnreachable
)

// String returns a stable name for the connector category.
func (c Connector) String() string {
	switch c {
	case ConnectorHelp:
		return "HELP"
	case ConnectorHelpLeakGroup:
		return "HELP_LEAK_GROUP"
	case ConnectorStart:
		return "START"
	case ConnectorStartLastReachable:
		return "START_LAST_REACHABLE"
	case ConnectorNodeUnknown:
		return "NODE_UNKNOWN"
	case ConnectorNodeReachable:
		return "NODE_REACHABLE"
	case ConnectorNodeLastReachable:
		return "NODE_LAST_REACHABLE"
	case ConnectorNodeFirstUnreachable:
		return "NODE_FIRST_UNREACHABLE"
	case ConnectorNodeUnreachable:
		return "NODE_UNREACHABLE"
	case ConnectorEnd:
		return "END"
	case ConnectorEndFirstUnreachable:
		return "END_FIRST_UNREACHABLE"
	default:
		return fmt.Sprintf("Connector(%d)", int(c))
	}
}

// ConnectorAt computes the connector category for the connector row at
// position. The decision is local: each call reads at most the element's own
// status and its immediate neighbors, so a full render pass stays O(n).
//
// An invalid position or a status outside the three-valued enumeration is a
// contract violation by the caller or a corrupt trace, and panics.
func ConnectorAt(position int, statuses []trace.LeakStatus, summaryCount int, isLeakGroup bool) Connector {
	elementCount := len(statuses)
	total := TotalRowCount(elementCount, summaryCount)
	if position < HeaderRowCount-1 || position >= HeaderRowCount+elementCount {
		panic(fmt.Sprintf("render: position %d is not a connector row (total %d rows)", position, total))
	}

	if IsFirstConnectorRow(position) {
		if isLeakGroup {
			return ConnectorHelpLeakGroup
		}
		return ConnectorHelp
	}

	i := position - HeaderRowCount
	checkStatus(statuses[i], i)

	// First element: the GC root side of the chain.
	if i == 0 {
		if elementCount == 1 {
			return ConnectorStartLastReachable
		}
		if nextNotLeaking(statuses, i) {
			return ConnectorStart
		}
		return ConnectorStartLastReachable
	}

	// Last row of the whole list: the leaked object, which only happens
	// with zero instance summaries. Leak-group views render the final
	// element with the ordinary interior rules instead.
	if position == total-1 {
		checkStatus(statuses[i-1], i-1)
		if statuses[i-1] != trace.StatusLeaking {
			return ConnectorEndFirstUnreachable
		}
		return ConnectorEnd
	}

	switch statuses[i] {
	case trace.StatusUnknown:
		return ConnectorNodeUnknown
	case trace.StatusNotLeaking:
		if nextNotLeaking(statuses, i) {
			return ConnectorNodeReachable
		}
		return ConnectorNodeLastReachable
	case trace.StatusLeaking:
		checkStatus(statuses[i-1], i-1)
		if statuses[i-1] != trace.StatusLeaking {
			return ConnectorNodeFirstUnreachable
		}
		return ConnectorNodeUnreachable
	default:
		panic(fmt.Sprintf("render: element %d has invalid leak status %d", i, int(statuses[i])))
	}
}

// nextNotLeaking reports whether the element after i is confirmed not
// leaking. A missing successor counts as not-NotLeaking: the element is
// then the boundary by construction.
func nextNotLeaking(statuses []trace.LeakStatus, i int) bool {
	if i+1 >= len(statuses) {
		return false
	}
	checkStatus(statuses[i+1], i+1)
	return statuses[i+1] == trace.StatusNotLeaking
}
