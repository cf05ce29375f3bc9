package burrow

import (
	"fmt"
)

// Moves returns every legal move from b in a deterministic order:
// room exits first (rooms by id, hallway offsets left to right), then
// hallway tokens entering their home room (left to right).
// A goal board has every token settled, so it yields no moves (nil)
// rather than a failure; Solve may be started from a solved board.
//
// Legality:
//   - A room token may leave only if every shallower slot is empty and it is
//     not settled (home room with only its own kind beneath it). It may stop
//     on any allowed hallway offset reachable without passing another token.
//   - A hallway token may only enter its home room, only when that room holds
//     no token of another kind and the hallway path is clear. It descends to
//     the deepest free slot.
//   - Room-to-room and hallway-to-hallway moves are never generated.
func (b Board) Moves() []Move {
	var out []Move

	// 1) Exits: only the topmost token of a room can move.
	for i, id := range RoomIDs {
		r := b.top(i)
		if r < 0 || b.settled(i, r) {
			continue
		}
		k := b.rooms[i][r]
		from := Room(id, r)
		for _, x := range AllowedOffsets {
			if b.hallClear(id, x) {
				out = append(out, newMove(k, from, Hallway(x)))
			}
		}
	}

	// 2) Entries: hallway tokens whose home room is open to them.
	for x, k := range b.hall {
		if k == Empty {
			continue
		}
		home := k.Home()
		if !b.roomAccepts(k) || !b.hallClear(x, home) {
			continue
		}
		out = append(out, newMove(k, Hallway(x), Room(home, b.homeSlot(k))))
	}

	return out
}

// top returns the rank of the shallowest token in room i, or -1 if empty.
func (b Board) top(i int) int {
	for r := 0; r < b.depth; r++ {
		if b.rooms[i][r] != Empty {
			return r
		}
	}

	return -1
}

// settled reports whether the token at (room i, rank r) is home and rests on
// tokens of its own kind only, so it never needs to move again.
func (b Board) settled(i, r int) bool {
	k := Kinds[i]
	for ; r < b.depth; r++ {
		if b.rooms[i][r] != k {
			return false
		}
	}

	return true
}

// settledCount returns how many tokens of room i's kind sit contiguously at its bottom.
func (b Board) settledCount(i int) int {
	n := 0
	for r := b.depth - 1; r >= 0 && b.rooms[i][r] == Kinds[i]; r-- {
		n++
	}

	return n
}

// roomAccepts reports whether k's home room holds nothing but kind k.
func (b Board) roomAccepts(k Kind) bool {
	i := roomIndex(k.Home())
	for r := 0; r < b.depth; r++ {
		if c := b.rooms[i][r]; c != Empty && c != k {
			return false
		}
	}

	return true
}

// hallClear reports whether every hallway cell after from, up to and
// including to, is empty. The cell at from itself is not inspected.
func (b Board) hallClear(from, to int) bool {
	step := 1
	if to < from {
		step = -1
	}
	for x := from; x != to; {
		x += step
		if b.hall[x] != Empty {
			return false
		}
	}

	return true
}

// homeSlot returns the deepest free rank in k's home room.
// It panics if the room is full or holds a token of another kind: callers
// must check roomAccepts first, and asking for a slot that cannot exist is a
// logic error, not a recoverable condition.
func (b Board) homeSlot(k Kind) int {
	i := roomIndex(k.Home())
	for r := b.depth - 1; r >= 0; r-- {
		switch b.rooms[i][r] {
		case Empty:
			return r
		case k:
			continue
		default:
			panic(fmt.Sprintf("burrow: home slot requested for %c while room %d holds %c",
				k.Letter(), k.Home(), b.rooms[i][r].Letter()))
		}
	}
	panic(fmt.Sprintf("burrow: home slot requested for %c but room %d is full", k.Letter(), k.Home()))
}
