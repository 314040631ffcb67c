package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDistanceKm(t *testing.T) {
	bangkok := Point(13.7563, 100.5018)
	chiangMai := Point(18.7883, 98.9853)

	d := DistanceKm(bangkok, chiangMai)
	require.NotNil(t, d)
	assert.InDelta(t, 582.0, *d, 5.0)

	assert.Nil(t, DistanceKm(nil, chiangMai))
	assert.Nil(t, DistanceKm(bangkok, nil))
	assert.Nil(t, DistanceKm(Point(91, 0), bangkok))
}

func TestDistanceKm_RoundsToTwoDecimals(t *testing.T) {
	d := DistanceKm(Point(0, 0), Point(0, 0.001))
	require.NotNil(t, d)
	assert.Equal(t, 0.11, *d)
}

func drawPoint(t *rapid.T, label string) *orb.Point {
	lat := rapid.Float64Range(-90, 90).Draw(t, label+"_lat")
	lng := rapid.Float64Range(-180, 180).Draw(t, label+"_lng")

	return Point(lat, lng)
}

func TestDistanceKm_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawPoint(t, "a")
		b := drawPoint(t, "b")

		self := DistanceKm(a, a)
		if self == nil || *self != 0 {
			t.Fatalf("distance to self = %v", self)
		}

		ab, ba := DistanceKm(a, b), DistanceKm(b, a)
		if ab == nil || ba == nil {
			t.Fatalf("distance unknown for valid points")
		}
		if *ab != *ba {
			t.Fatalf("asymmetric distance %v vs %v", *ab, *ba)
		}
		if *ab < 0 || *ab > 20016 {
			t.Fatalf("distance %v outside half circumference", *ab)
		}
	})
}

type candidate struct {
	name string
	dist *float64
}

func km(v float64) *float64 { return &v }

func TestSortByDistance(t *testing.T) {
	items := []candidate{
		{name: "u1"},
		{name: "far", dist: km(12.5)},
		{name: "u2"},
		{name: "near", dist: km(1.2)},
		{name: "mid", dist: km(4)},
		{name: "u3"},
	}

	SortByDistance(items, func(c candidate) *float64 { return c.dist })

	names := make([]string, 0, len(items))
	for _, c := range items {
		names = append(names, c.name)
	}
	assert.Equal(t, []string{"near", "mid", "far", "u1", "u2", "u3"}, names)
}

func TestSortByDistance_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		items := make([]candidate, n)
		for i := range items {
			items[i].name = string(rune('a' + i))
			if rapid.Bool().Draw(t, "known") {
				items[i].dist = km(rapid.Float64Range(0, 1000).Draw(t, "dist"))
			}
		}
		var unknownOrder []string
		for _, c := range items {
			if c.dist == nil {
				unknownOrder = append(unknownOrder, c.name)
			}
		}

		SortByDistance(items, func(c candidate) *float64 { return c.dist })

		seenUnknown := false
		var gotUnknown []string
		for i, c := range items {
			if c.dist == nil {
				seenUnknown = true
				gotUnknown = append(gotUnknown, c.name)

				continue
			}
			if seenUnknown {
				t.Fatalf("known distance after unknown at %d", i)
			}
			if i > 0 && items[i-1].dist != nil && *items[i-1].dist > *c.dist {
				t.Fatalf("not ascending at %d", i)
			}
		}
		if len(gotUnknown) != len(unknownOrder) {
			t.Fatalf("unknown count changed")
		}
		for i := range gotUnknown {
			if gotUnknown[i] != unknownOrder[i] {
				t.Fatalf("unknown order changed: %v vs %v", gotUnknown, unknownOrder)
			}
		}
	})
}
