package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battlemap-api/internal/geometry"
)

type GeometryTestSuite struct {
	suite.Suite
	dims geometry.Dimensions
}

func TestGeometrySuite(t *testing.T) {
	suite.Run(t, new(GeometryTestSuite))
}

func (s *GeometryTestSuite) SetupTest() {
	// 150 ft x 100 ft
	s.dims = geometry.Dimensions{WidthSquares: 30, HeightSquares: 20}
}

func (s *GeometryTestSuite) TestParseSpellRange() {
	testCases := []struct {
		name   string
		text   string
		want   geometry.RangeInfo
		wantOK bool
	}{
		{"self", "Self", geometry.RangeInfo{Kind: geometry.RangeSelf}, true},
		{"self with area", "Self (15-foot cone)", geometry.RangeInfo{Kind: geometry.RangeSelf}, true},
		{"touch", "Touch", geometry.RangeInfo{Kind: geometry.RangeTouch, Feet: 5}, true},
		{"feet", "150 feet", geometry.RangeInfo{Kind: geometry.RangeRanged, Feet: 150}, true},
		{"first integer wins", "60 feet (30 ft. sphere)", geometry.RangeInfo{Kind: geometry.RangeRanged, Feet: 60}, true},
		{"sight", "Sight", geometry.RangeInfo{}, false},
		{"empty", "", geometry.RangeInfo{}, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, ok := geometry.ParseSpellRange(tc.text)
			s.Assert().Equal(tc.wantOK, ok)
			s.Assert().Equal(tc.want, got)
		})
	}
}

func (s *GeometryTestSuite) TestParseDescription() {
	testCases := []struct {
		name   string
		text   string
		want   geometry.RangeInfo
		wantOK bool
	}{
		{
			name:   "ranged weapon attack takes normal range",
			text:   "Ranged Weapon Attack: +4 to hit, range 80/320 ft., one target.",
			want:   geometry.RangeInfo{Kind: geometry.RangeRanged, Feet: 80},
			wantOK: true,
		},
		{
			name:   "melee reach is touch",
			text:   "Melee Weapon Attack: +4 to hit, reach 5 ft., one target.",
			want:   geometry.RangeInfo{Kind: geometry.RangeTouch, Feet: 5},
			wantOK: true,
		},
		{
			name:   "long reach stays touch",
			text:   "Melee Weapon Attack: +6 to hit, reach 10 ft., one target.",
			want:   geometry.RangeInfo{Kind: geometry.RangeTouch, Feet: 10},
			wantOK: true,
		},
		{
			name:   "range of",
			text:   "You hurl a bolt at a creature within a range of 60 feet.",
			want:   geometry.RangeInfo{Kind: geometry.RangeRanged, Feet: 60},
			wantOK: true,
		},
		{
			name:   "foot range",
			text:   "The dragon exhales fire in a 30-foot range.",
			want:   geometry.RangeInfo{Kind: geometry.RangeRanged, Feet: 30},
			wantOK: true,
		},
		{
			name:   "foot radius",
			text:   "Each creature in a 20-foot-radius sphere must make a saving throw.",
			want:   geometry.RangeInfo{Kind: geometry.RangeRanged, Feet: 20},
			wantOK: true,
		},
		{
			name:   "ft radius",
			text:   "Creatures within a 10 ft radius take 2d6 damage.",
			want:   geometry.RangeInfo{Kind: geometry.RangeRanged, Feet: 10},
			wantOK: true,
		},
		{
			name:   "generic feet",
			text:   "The scout can see up to 120 ft in dim light.",
			want:   geometry.RangeInfo{Kind: geometry.RangeRanged, Feet: 120},
			wantOK: true,
		},
		{
			name:   "melee without number",
			text:   "Make a melee attack with your off hand.",
			want:   geometry.RangeInfo{Kind: geometry.RangeTouch, Feet: 5},
			wantOK: true,
		},
		{
			name:   "self wins over numbers",
			text:   "Affects only yourself... self, 30 ft",
			want:   geometry.RangeInfo{Kind: geometry.RangeSelf},
			wantOK: true,
		},
		{
			name:   "yourself is not self",
			text:   "You can target yourself or a creature within 30 ft.",
			want:   geometry.RangeInfo{Kind: geometry.RangeRanged, Feet: 30},
			wantOK: true,
		},
		{
			name:   "untouched is not touch",
			text:   "One creature left untouched by the blast within a range of 60 feet.",
			want:   geometry.RangeInfo{Kind: geometry.RangeRanged, Feet: 60},
			wantOK: true,
		},
		{
			name:   "no range",
			text:   "Use an item from your pack.",
			wantOK: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, ok := geometry.ParseDescription(tc.text)
			s.Assert().Equal(tc.wantOK, ok)
			s.Assert().Equal(tc.want, got)
		})
	}
}

func (s *GeometryTestSuite) TestDistanceAndLegality() {
	caster := geometry.Point{X: 0, Y: 0}
	target := geometry.Point{X: 50, Y: 0}

	s.Assert().InDelta(75.0, geometry.DistanceFeet(caster, target, s.dims), 1e-9)
	s.Assert().False(geometry.InRange(caster, target, s.dims, geometry.RangeInfo{Kind: geometry.RangeRanged, Feet: 60}))
	s.Assert().True(geometry.InRange(caster, target, s.dims, geometry.RangeInfo{Kind: geometry.RangeRanged, Feet: 80}))
	s.Assert().True(geometry.InRange(caster, target, s.dims, geometry.RangeInfo{Kind: geometry.RangeRanged, Feet: 75}))
}

func (s *GeometryTestSuite) TestMovementFeet() {
	from := geometry.Point{X: 10, Y: 10}

	// 30 squares wide: 1% is 1.5 ft
	s.Assert().Equal(30, geometry.MovementFeet(from, geometry.Point{X: 30, Y: 10}, s.dims))
	s.Assert().Equal(0, geometry.MovementFeet(from, from, s.dims))
	// 3% right, 4% down is 5% of width, 7.5 ft
	s.Assert().Equal(8, geometry.MovementFeet(from, geometry.Point{X: 13, Y: 14}, s.dims))
}

func (s *GeometryTestSuite) TestRangeEllipse() {
	e := geometry.RangeEllipse(geometry.Point{X: 10, Y: 20}, geometry.RangeInfo{Kind: geometry.RangeRanged, Feet: 60}, s.dims)

	s.Assert().Equal(geometry.Point{X: 10, Y: 20}, e.Center)
	s.Assert().InDelta(62.5/150*100, e.RadiusX, 1e-9)
	s.Assert().InDelta(62.5/100*100, e.RadiusY, 1e-9)
}

func (s *GeometryTestSuite) TestShapeMeasurements() {
	s.Assert().InDelta(15.0, geometry.CircleDiameterFeet(5, s.dims), 1e-9)

	length := geometry.SegmentLengthFeet(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 20, Y: 30}, s.dims)
	// 30 ft across, 30 ft down
	s.Assert().InDelta(42.426, length, 1e-3)

	s.Assert().Equal("42 ft", geometry.FormatFeet(length))
	s.Assert().InDelta(5.0, geometry.Extent(geometry.Point{X: 1, Y: 1}, geometry.Point{X: 4, Y: 5}), 1e-9)
}

func (s *GeometryTestSuite) TestDimensions() {
	s.Assert().Equal(150.0, s.dims.WidthFeet())
	s.Assert().Equal(100.0, s.dims.HeightFeet())
	s.Assert().True(s.dims.Valid())
	s.Assert().False(geometry.Dimensions{WidthSquares: 0, HeightSquares: 10}.Valid())
	s.Assert().Equal(geometry.Point{X: 0, Y: 100}, geometry.Clamp(geometry.Point{X: -4, Y: 130}))
}
