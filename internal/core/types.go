package core

// Size describes the dimensions of a grid or surface.
type Size struct {
	W int
	H int
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}
