package burrow

// Heuristic returns an admissible and consistent lower bound on the cost of
// reaching the goal from b. On a goal board it is 0, not a failure, since
// the search evaluates the start board and a solved start is valid input.
//
// For each kind, the unsettled tokens will fill the free slots of the home
// room from the deepest one upwards, one slot each. Every unsettled token is
// charged its walk to one of those slots, ignoring all other tokens:
//
//   - hallway or foreign room: Distance(pos, slot).
//   - own room, above a stranger: it must climb out, step aside at least one
//     offset and come back, i.e. (rank+1) + 2 + (slot+1).
//
// The slot set is fixed by the settled count, so the sum does not depend on
// which token is charged for which slot. A token entering its home room pays
// exactly its term, and a token leaving a room pays at least the decrease of
// its term, hence consistency.
func (b Board) Heuristic() int64 {
	var total int64
	for i, k := range Kinds {
		home := RoomIDs[i]
		slot := b.depth - 1 - b.settledCount(i)
		steps := 0

		for x, c := range b.hall {
			if c == k {
				steps += Hallway(x).Distance(Room(home, slot))
				slot--
			}
		}
		for j, id := range RoomIDs {
			limit := b.depth
			if j == i {
				limit = b.depth - b.settledCount(i)
			}
			for r := 0; r < limit; r++ {
				if b.rooms[j][r] != k {
					continue
				}
				if j == i {
					steps += (r + 1) + 2 + (slot + 1)
				} else {
					steps += Room(id, r).Distance(Room(home, slot))
				}
				slot--
			}
		}

		total += int64(steps) * k.UnitCost()
	}

	return total
}
