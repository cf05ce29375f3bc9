package burrow

import (
	"fmt"
	"strings"
)

// Extra room rows spliced in by Unfold, below the first room row.
var unfoldRows = [...]string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// Diagram columns of the hallway cells and of the four rooms.
const (
	hallStartCol = 1
	roomFirstCol = 3
)

// ParseDiagram reads the fixed burrow layout:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// Blank lines and trailing whitespace are ignored. The hallway row may hold
// letters on allowed offsets. Every line between the hallway row and the
// closing wall is a room row; the number of room rows is the depth.
// A '.' in a room slot is an empty cell.
func ParseDiagram(text string) (Board, error) {
	lines := diagramLines(text)
	if len(lines) < 4 {
		return Board{}, fmt.Errorf("%w: need at least 4 lines, got %d", ErrBadDiagram, len(lines))
	}

	if !isWall(lines[0]) || !isWall(lines[len(lines)-1]) {
		return Board{}, fmt.Errorf("%w: missing top or bottom wall", ErrBadDiagram)
	}

	hallRow := lines[1]
	if len(hallRow) < hallStartCol+HallwayLen+1 || hallRow[0] != '#' {
		return Board{}, fmt.Errorf("%w: hallway row %q", ErrBadDiagram, hallRow)
	}

	var tokens []Token
	for x := 0; x < HallwayLen; x++ {
		k, err := cellKind(hallRow[hallStartCol+x])
		if err != nil {
			return Board{}, fmt.Errorf("%w at hallway offset %d", err, x)
		}
		if k != Empty {
			tokens = append(tokens, Token{Kind: k, Pos: Hallway(x)})
		}
	}

	roomRows := lines[2 : len(lines)-1]
	for r, row := range roomRows {
		for i, id := range RoomIDs {
			col := roomFirstCol + 2*i
			if col >= len(row) {
				return Board{}, fmt.Errorf("%w: room row %d too short", ErrBadDiagram, r)
			}
			k, err := cellKind(row[col])
			if err != nil {
				return Board{}, fmt.Errorf("%w in room %d rank %d", err, id, r)
			}
			if k != Empty {
				tokens = append(tokens, Token{Kind: k, Pos: Room(id, r)})
			}
		}
	}

	return NewBoard(len(roomRows), tokens)
}

// Unfold splices the two folded-away rows below the first room row,
// turning a depth-2 diagram into its depth-4 counterpart.
func Unfold(text string) string {
	lines := diagramLines(text)
	if len(lines) < 3 {
		return text
	}

	out := make([]string, 0, len(lines)+len(unfoldRows))
	out = append(out, lines[:3]...)
	out = append(out, unfoldRows[:]...)
	out = append(out, lines[3:]...)

	return strings.Join(out, "\n") + "\n"
}

func diagramLines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimRight(l, " \t\r")
		if l != "" {
			out = append(out, l)
		}
	}

	return out
}

func isWall(line string) bool {
	line = strings.TrimSpace(line)

	return line != "" && strings.Trim(line, "#") == ""
}

func cellKind(c byte) (Kind, error) {
	if c == '.' {
		return Empty, nil
	}
	if k, ok := KindOf(rune(c)); ok {
		return k, nil
	}

	return Empty, fmt.Errorf("%w: unexpected %q", ErrBadDiagram, c)
}
