package burrow

import (
	"fmt"
	"strings"
)

// Board is a complete snapshot of the burrow.
//
// It is a comparable value and is used directly as the search memo key.
// The occupancy grid is canonical: tokens of one kind are interchangeable,
// so two boards are equal exactly when every cell holds the same kind.
// Room slots at rank ≥ depth are always Empty.
type Board struct {
	hall  [HallwayLen]Kind
	rooms [RoomCount][MaxDepth]Kind
	depth int
}

// NewBoard places tokens on an empty burrow whose rooms are depth slots deep.
//
// Validation (in order):
//  1. 1 ≤ depth ≤ MaxDepth (ErrBadDepth).
//  2. Every token has a valid kind (ErrBadKind) and position (ErrBadPosition).
//  3. No two tokens share a cell (ErrOccupied).
//  4. No room token stands above an empty slot (ErrFloating).
//  5. Each kind has either 0 or exactly depth tokens (ErrKindCount).
func NewBoard(depth int, tokens []Token) (Board, error) {
	if depth < 1 || depth > MaxDepth {
		return Board{}, fmt.Errorf("%w: %d", ErrBadDepth, depth)
	}

	b := Board{depth: depth}
	var counts [Desert + 1]int
	for _, t := range tokens {
		if !t.Kind.Valid() {
			return Board{}, fmt.Errorf("%w: %d", ErrBadKind, t.Kind)
		}
		if !b.valid(t.Pos) {
			return Board{}, fmt.Errorf("%w: %s", ErrBadPosition, t.Pos)
		}
		if b.At(t.Pos) != Empty {
			return Board{}, fmt.Errorf("%w: %s", ErrOccupied, t.Pos)
		}
		b.set(t.Pos, t.Kind)
		counts[t.Kind]++
	}

	for i, id := range RoomIDs {
		for r := 1; r < depth; r++ {
			if b.rooms[i][r-1] != Empty && b.rooms[i][r] == Empty {
				return Board{}, fmt.Errorf("%w: %s", ErrFloating, Room(id, r-1))
			}
		}
	}

	for _, k := range Kinds {
		if counts[k] != 0 && counts[k] != depth {
			return Board{}, fmt.Errorf("%w: %c has %d, depth %d", ErrKindCount, k.Letter(), counts[k], depth)
		}
	}

	return b, nil
}

// Depth returns the number of slots per room.
func (b Board) Depth() int { return b.depth }

// At returns the kind standing at p, or Empty. p must be a valid position.
func (b Board) At(p Position) Kind {
	if p.Hall {
		return b.hall[p.Column]
	}

	return b.rooms[roomIndex(p.Column)][p.Rank]
}

func (b *Board) set(p Position, k Kind) {
	if p.Hall {
		b.hall[p.Column] = k
		return
	}
	b.rooms[roomIndex(p.Column)][p.Rank] = k
}

// valid reports whether p is a standable cell of b.
func (b Board) valid(p Position) bool {
	if p.Hall {
		return p.Column >= 0 && p.Column < HallwayLen && !isRoomColumn(p.Column)
	}

	return isRoomColumn(p.Column) && p.Rank >= 0 && p.Rank < b.depth
}

// Tokens lists every token: hallway left to right, then rooms by id and rank.
func (b Board) Tokens() []Token {
	var out []Token
	for x, k := range b.hall {
		if k != Empty {
			out = append(out, Token{Kind: k, Pos: Hallway(x)})
		}
	}
	for i, id := range RoomIDs {
		for r := 0; r < b.depth; r++ {
			if k := b.rooms[i][r]; k != Empty {
				out = append(out, Token{Kind: k, Pos: Room(id, r)})
			}
		}
	}

	return out
}

// IsGoal reports whether every token rests in its home room.
func (b Board) IsGoal() bool {
	for _, k := range b.hall {
		if k != Empty {
			return false
		}
	}
	for i := range b.rooms {
		for r := 0; r < b.depth; r++ {
			if k := b.rooms[i][r]; k != Empty && k != Kinds[i] {
				return false
			}
		}
	}

	return true
}

// Apply returns the board after m. It accepts exactly the moves listed by
// Moves: the source must hold m.Kind, the destination must be free, the cost
// must agree with the distance, and the move itself must be legal on b.
func (b Board) Apply(m Move) (Board, error) {
	if !b.valid(m.From) || !b.valid(m.To) {
		return Board{}, fmt.Errorf("%w: %s", ErrBadPosition, m)
	}
	if b.At(m.From) != m.Kind || !m.Kind.Valid() {
		return Board{}, fmt.Errorf("%w: %c not at %s", ErrIllegalMove, m.Kind.Letter(), m.From)
	}
	if b.At(m.To) != Empty {
		return Board{}, fmt.Errorf("%w: %s", ErrOccupied, m.To)
	}
	if want := newMove(m.Kind, m.From, m.To).Cost; m.Cost != want {
		return Board{}, fmt.Errorf("%w: cost %d, want %d", ErrIllegalMove, m.Cost, want)
	}
	for _, legal := range b.Moves() {
		if legal == m {
			return b.apply(m), nil
		}
	}

	return Board{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
}

// apply is Apply without checks, for the search hot path.
func (b Board) apply(m Move) Board {
	b.set(m.From, Empty)
	b.set(m.To, m.Kind)

	return b
}

// String renders b in the diagram layout accepted by ParseDiagram.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("#############\n#")
	for _, k := range b.hall {
		sb.WriteByte(k.Letter())
	}
	sb.WriteString("#\n")
	for r := 0; r < b.depth; r++ {
		if r == 0 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for i := range b.rooms {
			sb.WriteByte(b.rooms[i][r].Letter())
			sb.WriteByte('#')
		}
		if r == 0 {
			sb.WriteString("##")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  #########\n")

	return sb.String()
}
