package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roadsSeed = `[
  {"name": "azadi", "geom": "LINESTRING ((51.32 35.70, 51.33 35.71, 51.34 35.72))", "width": 15},
  {"name": "broken road", "geom": "LINESTRING (51.32 35.70)", "width": 10},
  {"name": "valiasr", "geom": "((51.10 35.50, 51.20 35.60))", "width": 32}
]`

func TestListRoadSegments(t *testing.T) {
	repo := NewJSONRoadRepository(writeDataset(t, "roads.json", roadsSeed))

	segments, err := repo.ListRoadSegments(context.Background())
	require.NoError(t, err)

	// The record without a parenthesized coordinate list is skipped.
	require.Len(t, segments, 2)

	azadi := segments[0]
	assert.Equal(t, "azadi", azadi.Name)
	assert.Equal(t, 51.32, azadi.Start.Lon)
	assert.Equal(t, 35.70, azadi.Start.Lat)
	assert.Equal(t, 51.34, azadi.End.Lon)
	assert.Equal(t, 35.72, azadi.End.Lat)
	assert.Equal(t, 15.0, azadi.Width)

	assert.Equal(t, "valiasr", segments[1].Name)
}
