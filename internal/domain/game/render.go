package game

import (
	"fmt"
	"html"
	"strings"

	"github.com/KirkDiggler/board-bot-discord/internal/domain/board"
)

// Format selects how the board grid is drawn
type Format int

const (
	FormatText Format = iota
	FormatHTML
)

// Cell is one square of the drawn grid. Corners have no space.
type Cell struct {
	Space  *board.Space
	Marker string
}

// grid lays the ring out as a rectangle. Each cell shows the letter of the
// player standing on it, * for several, or the lowercase letter of the owner.
func (e *Engine) grid() [][]Cell {
	rows, cols := e.board.GridSize()
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}

	occupants := make(map[board.Location][]*Player)
	for _, p := range e.players {
		if !p.Eliminated {
			occupants[p.Location] = append(occupants[p.Location], p)
		}
	}

	for _, side := range []board.Side{board.SideLeft, board.SideTop, board.SideRight, board.SideBottom} {
		for i := 0; i < e.board.SideLen(side); i++ {
			loc := board.Location{Side: side, Index: i}
			space := e.board.Space(loc)
			r, c := e.board.GridPosition(loc)
			cells[r][c] = Cell{Space: space, Marker: e.marker(space, occupants[loc])}
		}
	}
	return cells
}

func (e *Engine) marker(space *board.Space, here []*Player) string {
	switch {
	case len(here) > 1:
		return "*"
	case len(here) == 1:
		return here[0].Label
	case space.IsOwned():
		if owner, ok := e.byID[space.Owner()]; ok {
			return strings.ToLower(owner.Label)
		}
	}
	return "."
}

func (e *Engine) renderBoard(format Format) string {
	cells := e.grid()
	if format == FormatHTML {
		return renderHTML(cells)
	}
	return renderText(cells)
}

func renderText(cells [][]Cell) string {
	var sb strings.Builder
	for r, row := range cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			if cell.Space == nil {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(cell.Marker)
		}
	}
	return sb.String()
}

func renderHTML(cells [][]Cell) string {
	var sb strings.Builder
	sb.WriteString(`<table class="board">`)
	for _, row := range cells {
		sb.WriteString("<tr>")
		for _, cell := range row {
			if cell.Space == nil {
				sb.WriteString("<td></td>")
				continue
			}
			marker := cell.Marker
			if marker == "." {
				marker = "&nbsp;"
			} else {
				marker = html.EscapeString(marker)
			}
			fmt.Fprintf(&sb, `<td style="background-color:%s" title="%s">%s</td>`,
				html.EscapeString(cell.Space.Color), html.EscapeString(cell.Space.Name), marker)
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
	return sb.String()
}

func (e *Engine) roundSummary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Round %d**\n```\n%s\n```", e.round, renderText(e.grid()))
	for _, p := range e.order {
		if p.Eliminated {
			continue
		}
		fmt.Fprintf(&sb, "\n%s %s: %d, %d properties", p.Label, p.Name, p.Currency, len(p.Properties))
		if p.jailed {
			sb.WriteString(", in jail")
		}
	}
	return sb.String()
}

func (e *Engine) playerSummary(p *Player) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)", p.Name, p.Label)
	if p.Eliminated {
		sb.WriteString(" is eliminated.")
		return sb.String()
	}

	fmt.Fprintf(&sb, " is on %s with %d.", e.board.Space(p.Location).Name, p.Currency)
	if turn, jailed := p.JailTurn(); jailed {
		fmt.Fprintf(&sb, " In jail (%d of %d attempts used).", turn, maxJailAttempts)
	}
	if p.EscapeTokens > 0 {
		fmt.Fprintf(&sb, " Escape tokens: %d.", p.EscapeTokens)
	}
	if len(p.Properties) == 0 {
		sb.WriteString(" No properties.")
		return sb.String()
	}

	names := make([]string, len(p.Properties))
	for i, space := range p.Properties {
		names[i] = fmt.Sprintf("%s (%s)", space.Name, space.Color)
	}
	fmt.Fprintf(&sb, " Properties: %s.", strings.Join(names, ", "))
	return sb.String()
}
