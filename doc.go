/*
Package patrol simulates a guard patrolling a grid and finds the obstacle
placements that trap it in a loop.

The guard walks forward until the cell ahead is an obstacle, then turns 90°
clockwise in place. A walk ends when the guard steps off the grid. Two
questions are answered for a map:

  - How many distinct cells does the guard visit before leaving?
  - For how many cells would one extra obstacle make the guard patrol forever?

# Map format

One row per line. '.' is open floor, '#' is an obstacle and exactly one of
'^', '>', 'v', '<' marks the guard's start and facing.

# Usage

	report, err := patrol.Solve(ctx, strings.NewReader(mapText))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(report.Visited, report.Loops)

# Loop detection

The guard's whole state is its (direction, position) pair and the map is
static during one run, so the step function is deterministic. Seeing the same
pair twice means the guard repeats forever. Each candidate obstacle is tried
on its own clone of the map.
*/
package patrol
