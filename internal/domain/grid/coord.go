package grid

// Coord identifies a chunk by its integer position on a surface grid.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// neighborOffsets is the 4-connected adjacency used by both classifier stages.
var neighborOffsets = [4]Coord{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

func (c Coord) translate(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}
