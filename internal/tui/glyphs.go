package tui

import "leakview/internal/render"

// Connector glyphs. The glyph shape encodes the position kind (chain start,
// interior node, chain end), the trunk below a boundary element switches to
// a dashed line, and color encodes the reachability verdict.
const (
	glyphHelp       = "┬"
	glyphStart      = "┌"
	glyphNode       = "├"
	glyphEnd        = "└"
	glyphTrunk      = "│"
	glyphTrunkDash  = "┊"
	glyphTrunkBlank = " "
)

// Nerd Font status icons shown beside the connector glyph when enabled.
const (
	iconReachable = "\uf058" // circled check
	iconLeaking   = "\uf057" // circled cross
	iconUnknown   = "\uf059" // circled question mark
	iconHelp      = "\uf05a" // circled info
)

// connectorIcon returns the Nerd Font verdict icon for a connector category.
func connectorIcon(c render.Connector) string {
	switch c {
	case render.ConnectorHelp, render.ConnectorHelpLeakGroup:
		return iconHelp
	case render.ConnectorStart, render.ConnectorStartLastReachable,
		render.ConnectorNodeReachable, render.ConnectorNodeLastReachable:
		return iconReachable
	case render.ConnectorNodeFirstUnreachable, render.ConnectorNodeUnreachable,
		render.ConnectorEnd, render.ConnectorEndFirstUnreachable:
		return iconLeaking
	default:
		return iconUnknown
	}
}

// connectorGlyphs returns the unstyled first-line glyph and continuation
// trunk for a connector category.
func connectorGlyphs(c render.Connector) (first, cont string) {
	switch c {
	case render.ConnectorHelp, render.ConnectorHelpLeakGroup:
		return glyphHelp, glyphTrunk
	case render.ConnectorStart:
		return glyphStart, glyphTrunk
	case render.ConnectorStartLastReachable:
		// Boundary at the root: everything below is unexplained.
		return glyphStart, glyphTrunkDash
	case render.ConnectorNodeReachable:
		return glyphNode, glyphTrunk
	case render.ConnectorNodeLastReachable:
		return glyphNode, glyphTrunkDash
	case render.ConnectorNodeUnknown:
		return glyphNode, glyphTrunkDash
	case render.ConnectorNodeFirstUnreachable, render.ConnectorNodeUnreachable:
		return glyphNode, glyphTrunk
	case render.ConnectorEnd, render.ConnectorEndFirstUnreachable:
		return glyphEnd, glyphTrunkBlank
	default:
		return glyphNode, glyphTrunk
	}
}
