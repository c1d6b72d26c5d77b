package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3

	alive, neighbors < 2   -> dead (underpopulation)
	alive, neighbors 2..3  -> alive
	alive, neighbors > 3   -> dead (overpopulation)
	dead,  neighbors == 3  -> alive (birth)
	dead,  otherwise       -> dead
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// NextState is ApplyConwayRules over binary cell values
func NextState(alive uint8, neighbors int) uint8 {
	if ApplyConwayRules(neighbors, alive == 1) {
		return 1
	}
	return 0
}
