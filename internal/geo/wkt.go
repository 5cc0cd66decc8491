package geo

import (
	"regexp"
	"strconv"
	"strings"

	"toll-road-service/internal/domain"
)

var (
	pointPattern   = regexp.MustCompile(`(\d+\.\d+)\s(\d+\.\d+)`)
	segmentPattern = regexp.MustCompile(`\(\((.*)\)\)`)
)

// Token offsets into a whitespace-split coordinate point. Every point after
// the first carries a leading empty token from the ", " separator, so the
// end point reads tokens 1 and 2 where the start point reads 0 and 1.
const (
	startLonToken = 0
	startLatToken = 1
	endLonToken   = 1
	endLatToken   = 2
)

// ParsePoint extracts the first (longitude, latitude) pair embedded in a
// free-text location string such as "POINT (51.338 35.699)".
func ParsePoint(text string) (domain.Coordinate, error) {
	m := pointPattern.FindStringSubmatch(text)
	if m == nil {
		return domain.Coordinate{}, &domain.ParseError{Text: text, Reason: "no coordinate pair"}
	}

	lon, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return domain.Coordinate{}, &domain.ParseError{Text: text, Reason: "bad longitude"}
	}
	lat, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return domain.Coordinate{}, &domain.ParseError{Text: text, Reason: "bad latitude"}
	}

	return domain.Coordinate{Lon: lon, Lat: lat}, nil
}

// ParseSegmentEndpoints extracts the first and last coordinate pair from a
// multi-point geometry string of the form "LINESTRING ((p1, p2, ..., pn))".
// Intermediate points are discarded.
func ParseSegmentEndpoints(text string) (start, end domain.Coordinate, err error) {
	m := segmentPattern.FindStringSubmatch(text)
	if m == nil {
		return start, end, &domain.ParseError{Text: text, Reason: "no coordinate list"}
	}

	points := strings.Split(m[1], ",")
	first := strings.Split(points[0], " ")
	last := strings.Split(points[len(points)-1], " ")

	start, err = pointFromTokens(first, startLonToken, startLatToken, text)
	if err != nil {
		return start, end, err
	}
	end, err = pointFromTokens(last, endLonToken, endLatToken, text)
	if err != nil {
		return start, end, err
	}

	return start, end, nil
}

func pointFromTokens(tokens []string, lonIdx, latIdx int, text string) (domain.Coordinate, error) {
	if len(tokens) <= latIdx {
		return domain.Coordinate{}, &domain.ParseError{Text: text, Reason: "short coordinate point"}
	}

	lon, err := strconv.ParseFloat(tokens[lonIdx], 64)
	if err != nil {
		return domain.Coordinate{}, &domain.ParseError{Text: text, Reason: "bad longitude"}
	}
	lat, err := strconv.ParseFloat(tokens[latIdx], 64)
	if err != nil {
		return domain.Coordinate{}, &domain.ParseError{Text: text, Reason: "bad latitude"}
	}

	return domain.Coordinate{Lon: lon, Lat: lat}, nil
}
