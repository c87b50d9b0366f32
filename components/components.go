// Package components holds the component types of the ant world: map cells and
// ants are entities carrying these.
package components

import "math"

// ResourceID refers to a loaded resource such as an instruction set.
type ResourceID uint32

// Position is a cell on the hexagonal grid.
type Position struct {
	X, Y int
}

// Translate returns the neighbouring position in direction dir.
func (p Position) Translate(dir Direction) Position {
	switch dir {
	case East:
		return Position{p.X + 1, p.Y}
	case SouthEast:
		return Position{p.X + 1, p.Y + 1}
	case SouthWest:
		return Position{p.X - 1, p.Y + 1}
	case West:
		return Position{p.X - 1, p.Y}
	case NorthWest:
		return Position{p.X - 1, p.Y - 1}
	case NorthEast:
		return Position{p.X + 1, p.Y - 1}
	}
	return p
}

type Direction uint8

const (
	West Direction = iota
	East
	NorthWest
	NorthEast
	SouthWest
	SouthEast
)

var directionNames = [...]string{"West", "East", "NorthWest", "NorthEast", "SouthWest", "SouthEast"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Direction(?)"
}

// Right is the direction one sixth of a turn clockwise.
func (d Direction) Right() Direction {
	switch d {
	case West:
		return NorthWest
	case NorthWest:
		return NorthEast
	case NorthEast:
		return East
	case East:
		return SouthEast
	case SouthEast:
		return SouthWest
	default:
		return West
	}
}

// Left is the direction one sixth of a turn counter-clockwise.
func (d Direction) Left() Direction {
	switch d {
	case West:
		return SouthWest
	case SouthWest:
		return SouthEast
	case SouthEast:
		return East
	case East:
		return NorthEast
	case NorthEast:
		return NorthWest
	default:
		return West
	}
}

func (d *Direction) TurnRight() {
	*d = d.Right()
}

func (d *Direction) TurnLeft() {
	*d = d.Left()
}

// Angle is the heading in radians, 0 facing east, y pointing south.
func (d Direction) Angle() float32 {
	switch d {
	case West:
		return math.Pi
	case NorthWest:
		return -2 * math.Pi / 3
	case NorthEast:
		return -math.Pi / 3
	case SouthWest:
		return 2 * math.Pi / 3
	case SouthEast:
		return math.Pi / 3
	}
	return 0
}

// AllDirections lists every direction clockwise starting east.
func AllDirections() []Direction {
	return []Direction{East, SouthEast, SouthWest, West, NorthWest, NorthEast}
}

type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

func (c Color) Opposite() Color {
	if c == Red {
		return Black
	}
	return Red
}

// Index maps the color to 0 or 1 for per-color tables.
func (c Color) Index() int {
	if c == Red {
		return 0
	}
	return 1
}

func (c Color) RGB() [3]float32 {
	if c == Red {
		return [3]float32{0.8, 0.1412, 0.1137}
	}
	return [3]float32{0.2353, 0.2196, 0.2118}
}

// Markers holds one marker bitfield per color.
type Markers struct {
	Red   uint8
	Black uint8
}

func (m Markers) Get(c Color) uint8 {
	return *m.ptr(c)
}

// Ptr returns the bitfield of color c for in-place updates.
func (m *Markers) Ptr(c Color) *uint8 {
	return m.ptr(c)
}

func (m *Markers) ptr(c Color) *uint8 {
	if c == Red {
		return &m.Red
	}
	return &m.Black
}

// Mark sets marker i (0-7) of color c.
func (m *Markers) Mark(c Color, i uint) {
	*m.ptr(c) |= 1 << i
}

func (m *Markers) Unmark(c Color, i uint) {
	*m.ptr(c) &^= 1 << i
}

func (m Markers) IsMarked(c Color, i uint) bool {
	return m.Get(c)&(1<<i) != 0
}

// FoodContainer is carried by entities that hold food up to Capacity.
type FoodContainer struct {
	Holding  uint32
	Capacity uint32
}

func (f FoodContainer) Full() bool {
	return f.Holding >= f.Capacity
}

func (f FoodContainer) Empty() bool {
	return f.Holding == 0
}

type CellType uint8

const (
	CellEmpty CellType = iota
	CellObstacle
	CellNest
)

func (t CellType) String() string {
	switch t {
	case CellObstacle:
		return "Obstacle"
	case CellNest:
		return "Nest"
	}
	return "Empty"
}

// ExecutionContext is everything an ant needs to run its instruction set.
type ExecutionContext struct {
	CurrentInstruction int
	InstructionSetID   ResourceID
	Cooldown           uint8
}

// Ready reports whether the ant may execute its next instruction.
func (e ExecutionContext) Ready() bool {
	return e.Cooldown == 0
}

// Tick counts the cooldown down by one turn.
func (e *ExecutionContext) Tick() {
	if e.Cooldown > 0 {
		e.Cooldown--
	}
}
