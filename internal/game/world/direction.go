package world

// Direction labels a link out of a room. Any string is a valid label; the
// compass and vertical values below are the ones that have an opposite.
type Direction string

// Compass and vertical directions.
const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	Northeast Direction = "northeast"
	Northwest Direction = "northwest"
	Southeast Direction = "southeast"
	Southwest Direction = "southwest"
	Up        Direction = "up"
	Down      Direction = "down"
)

// reverse maps each compass or vertical direction to the way back.
var reverse = map[Direction]Direction{
	North: South, South: North,
	East: West, West: East,
	Northeast: Southwest, Southwest: Northeast,
	Northwest: Southeast, Southeast: Northwest,
	Up: Down, Down: Up,
}

// IsStandard reports whether d is a compass or vertical direction.
func (d Direction) IsStandard() bool {
	_, ok := reverse[d]
	return ok
}

// Opposite returns the way back along d.
//
// Postcondition: ok is false, and back is empty, for custom labels such as
// "stairs".
func (d Direction) Opposite() (back Direction, ok bool) {
	back, ok = reverse[d]
	return back, ok
}
