// Package burrow defines the board model of the amphipod burrow puzzle:
// token kinds, positions, moves and sentinel errors.
//
// Layout (depth 2 shown):
//
//	#############
//	#01.3.5.7.9X#   hallway offsets 0..10 (X = 10)
//	###A#B#C#D###   rooms hang below offsets 2, 4, 6, 8
//	  #A#B#C#D#     rank 0 is next to the hallway, rank depth-1 is deepest
//	  #########
//
// Rooms are identified by the hallway offset they open onto, so hallway
// offsets and room ids share one coordinate line for distance purposes.
package burrow

import (
	"errors"
	"fmt"
)

// Sentinel errors for board construction, parsing and solving.
var (
	// ErrBadDepth indicates a room depth outside 1..MaxDepth.
	ErrBadDepth = errors.New("burrow: room depth out of range")

	// ErrBadPosition indicates a position that is not a cell of the burrow,
	// or a hallway offset directly above a room.
	ErrBadPosition = errors.New("burrow: invalid position")

	// ErrBadKind indicates a token without a valid kind.
	ErrBadKind = errors.New("burrow: invalid token kind")

	// ErrOccupied indicates two tokens placed on the same cell.
	ErrOccupied = errors.New("burrow: cell already occupied")

	// ErrFloating indicates a room token with an empty slot beneath it.
	ErrFloating = errors.New("burrow: token above an empty slot")

	// ErrKindCount indicates a kind whose token count is neither 0 nor the room depth.
	ErrKindCount = errors.New("burrow: token count per kind must be 0 or depth")

	// ErrBadDiagram indicates text that does not follow the burrow diagram layout.
	ErrBadDiagram = errors.New("burrow: malformed diagram")

	// ErrIllegalMove indicates a move that does not match the board.
	ErrIllegalMove = errors.New("burrow: illegal move")

	// ErrNoSolution indicates that the goal is unreachable from the board.
	ErrNoSolution = errors.New("burrow: no solution")
)

// Fixed geometry.
const (
	HallwayLen = 11
	RoomCount  = 4
	MaxDepth   = 4
)

// RoomIDs are the hallway offsets the rooms open onto, in Kind order.
var RoomIDs = [RoomCount]int{2, 4, 6, 8}

// AllowedOffsets are the hallway offsets a token may stop on:
// every offset except those directly above a room.
var AllowedOffsets = [...]int{0, 1, 3, 5, 7, 9, 10}

// Kind identifies a token's home room. Empty marks a free cell.
type Kind uint8

const (
	Empty Kind = iota
	Amber
	Bronze
	Copper
	Desert
)

// Kinds lists every token kind in home-room order.
var Kinds = [RoomCount]Kind{Amber, Bronze, Copper, Desert}

var unitCosts = [...]int64{Amber: 1, Bronze: 10, Copper: 100, Desert: 1000}

// KindOf maps a diagram letter ('A'..'D') to its Kind.
func KindOf(r rune) (Kind, bool) {
	if r < 'A' || r > 'D' {
		return Empty, false
	}

	return Kind(r-'A') + Amber, true
}

// Valid reports whether k is one of the four token kinds.
func (k Kind) Valid() bool { return k >= Amber && k <= Desert }

// Letter returns the diagram letter of k, or '.' for Empty.
func (k Kind) Letter() byte {
	if !k.Valid() {
		return '.'
	}

	return 'A' + byte(k-Amber)
}

// Home returns the id of k's home room.
func (k Kind) Home() int { return RoomIDs[k-Amber] }

// UnitCost returns the cost of moving a token of kind k by one cell.
func (k Kind) UnitCost() int64 { return unitCosts[k] }

// roomIndex maps a room id (2, 4, 6, 8) to its index in Board.rooms.
func roomIndex(id int) int { return id/2 - 1 }

// isRoomColumn reports whether hallway offset x sits directly above a room.
func isRoomColumn(x int) bool { return x >= 2 && x <= 8 && x%2 == 0 }

// Position is either a hallway cell (Hall=true, Column=offset) or a room slot
// (Hall=false, Column=room id, Rank=depth rank, 0 nearest the hallway).
type Position struct {
	Hall   bool
	Column int
	Rank   int
}

// Hallway returns the hallway position at offset x.
func Hallway(x int) Position { return Position{Hall: true, Column: x} }

// Room returns the slot at rank inside room id.
func Room(id, rank int) Position { return Position{Column: id, Rank: rank} }

// Distance returns the number of cells a token walks between p and q.
//
//	hallway ↔ hallway:  |x - y|
//	room    ↔ hallway:  |column - y| + rank + 1
//	same room:          |rank1 - rank2|
//	room    ↔ room:     |column1 - column2| + rank1 + rank2 + 2
func (p Position) Distance(q Position) int {
	dx := abs(p.Column - q.Column)
	switch {
	case p.Hall && q.Hall:
		return dx
	case p.Hall:
		return dx + q.Rank + 1
	case q.Hall:
		return dx + p.Rank + 1
	case p.Column == q.Column:
		return abs(p.Rank - q.Rank)
	default:
		return dx + p.Rank + q.Rank + 2
	}
}

// String renders p as "hall:3" or "room:4/1".
func (p Position) String() string {
	if p.Hall {
		return fmt.Sprintf("hall:%d", p.Column)
	}

	return fmt.Sprintf("room:%d/%d", p.Column, p.Rank)
}

// Token is a kind standing at a position.
type Token struct {
	Kind Kind
	Pos  Position
}

// Move relocates one token. Cost is UnitCost × Distance(From, To).
type Move struct {
	Kind     Kind
	From, To Position
	Cost     int64
}

// String renders m as "B room:6/0 -> hall:3 (40)".
func (m Move) String() string {
	return fmt.Sprintf("%c %s -> %s (%d)", m.Kind.Letter(), m.From, m.To, m.Cost)
}

func newMove(k Kind, from, to Position) Move {
	return Move{Kind: k, From: from, To: to, Cost: k.UnitCost() * int64(from.Distance(to))}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
