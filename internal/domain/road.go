package domain

// RoadSegment is a named road reduced to the axis-aligned bounding pair
// between the first and last point of its geometry text. Intermediate points
// are discarded; that reduction is part of the data model, not an accident.
type RoadSegment struct {
	Name  string
	Start Coordinate
	End   Coordinate
	Width float64
}

// Contains reports whether the point lies inside the segment's bounding box.
// All four bounds are inclusive.
func (s RoadSegment) Contains(c Coordinate) bool {
	return c.Lon >= s.Start.Lon && c.Lon <= s.End.Lon &&
		c.Lat >= s.Start.Lat && c.Lat <= s.End.Lat
}
