/*
Package dsl provides a fluent builder for constructing patrol maps in Go.

It avoids hand-writing map text in tests and lets callers generate maps
programmatically. Build produces the same grid and guard that parsing the
equivalent text would, with the start cell already marked visited.

Example usage:

	grid, guard, err := dsl.New(3, 3).
		Obstacle(0, 1).
		Guard(2, 1, domain.North).
		Build()
*/
package dsl
