package domain

import "time"

// Ping is a single recorded (vehicle, coordinate, timestamp) observation.
// Date keeps the stored ISO-8601 text so that day filtering can stay a
// lexical prefix match.
type Ping struct {
	VehicleID int
	Location  Coordinate
	Date      string
}

// Timestamp parses the stored date text. Unparseable dates yield the zero
// time, which loses every "latest ping" comparison.
func (p Ping) Timestamp() time.Time {
	t, err := time.Parse(time.RFC3339, p.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
