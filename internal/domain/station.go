package domain

// Station is a toll station at a fixed point charging a fixed amount per
// crossing. Stations are looked up by exact name.
type Station struct {
	Name         string
	Location     Coordinate
	TollPerCross float64
}
