/*
Package domain contains the core domain models of the patrol simulator.

It defines the grid the guard walks, the guard itself and the vocabulary used
to describe a single step and the outcome of a run. This package is kept pure
and free of I/O; parsing lives in internal/compiler and the run loop lives in
internal/runtime.

# Key Entities

  - Grid: Rectangular, row-major store of CellState values.
  - Position: Signed (row, col) pair. A step may transiently leave the grid.
  - Direction: One of the four cardinal headings, turning clockwise.
  - Agent: The guard, a (Direction, Position) pair. It is comparable and is the
    key used for cycle detection.
  - StepResult / RunStatus: Outcome of one step and of a whole run.
*/
package domain
