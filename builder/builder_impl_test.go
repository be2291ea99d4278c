package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlathds/builder"
	"github.com/katalvlaran/lvlathds/core"
)

// TopologySuite checks vertex/edge counts and shapes of every constructor.
type TopologySuite struct {
	suite.Suite
}

func (s *TopologySuite) build(gopts []core.GraphOption, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	g, err := builder.BuildGraph(gopts, bopts, cons...)
	s.Require().NoError(err)
	return g
}

func degree(t *testing.T, g *core.Graph, v int) int {
	t.Helper()
	out, err := g.OutEdges(v)
	require.NoError(t, err)
	return len(out)
}

func (s *TopologySuite) TestCounts() {
	cases := []struct {
		name      string
		con       builder.Constructor
		vertices  int
		undirEdge int
		dirEdge   int
	}{
		{"Path", builder.Path(5), 5, 4, 4},
		{"Cycle", builder.Cycle(6), 6, 6, 6},
		{"Star", builder.Star(5), 5, 4, 8},
		{"Wheel", builder.Wheel(6), 6, 10, 15},
		{"Complete", builder.Complete(5), 5, 10, 20},
		{"Grid", builder.Grid(3, 4), 12, 17, 34},
		{"Complete1", builder.Complete(1), 1, 0, 0},
	}
	for _, tc := range cases {
		g := s.build(nil, nil, tc.con)
		s.Equal(tc.vertices, g.VertexCount(), tc.name)
		s.Equal(tc.undirEdge, g.EdgeCount(), tc.name)

		d := s.build([]core.GraphOption{core.WithDirected()}, nil, tc.con)
		s.Equal(tc.dirEdge, d.EdgeCount(), tc.name+" directed")
	}
}

func (s *TopologySuite) TestShapes() {
	t := s.T()

	star := s.build(nil, nil, builder.Star(6))
	s.Equal(5, degree(t, star, 0), "hub is the first vertex")
	for v := 1; v < 6; v++ {
		s.Equal(1, degree(t, star, v))
	}

	wheel := s.build(nil, nil, builder.Wheel(5))
	s.Equal(4, degree(t, wheel, 4), "hub is the last vertex")
	for v := 0; v < 4; v++ {
		s.Equal(3, degree(t, wheel, v))
	}

	grid := s.build(nil, nil, builder.Grid(3, 3))
	s.Equal(4, degree(t, grid, 4), "center cell")
	s.Equal(2, degree(t, grid, 0), "corner cell")

	path := s.build(nil, nil, builder.Path(3))
	e, err := path.Edge(1)
	s.Require().NoError(err)
	s.Equal(core.Edge{From: 1, To: 2, Weight: builder.DefaultEdgeWeight}, e)
}

// TestComposition checks that constructors append disjoint vertex blocks.
func (s *TopologySuite) TestComposition() {
	g := s.build(nil, nil, builder.Path(3), builder.Cycle(3))
	s.Equal(6, g.VertexCount())
	s.Equal(5, g.EdgeCount())
	for _, e := range g.Edges() {
		s.Equal(e.From < 3, e.To < 3, "edge %v crosses blocks", e)
	}
}

func (s *TopologySuite) TestWeights() {
	g := s.build(nil, []builder.BuilderOption{builder.WithSeed(3), builder.WithIntWeight(1, 9)}, builder.Complete(6))
	for _, e := range g.Edges() {
		s.GreaterOrEqual(e.Weight, 1.0)
		s.LessOrEqual(e.Weight, 9.0)
	}

	// Mirrored edges share the drawn weight.
	d := s.build([]core.GraphOption{core.WithDirected()},
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithUniformWeight(0, 1)}, builder.Star(4))
	for id := 0; id < d.EdgeCount(); id += 2 {
		a, _ := d.Edge(id)
		b, _ := d.Edge(id + 1)
		s.Equal(a.Weight, b.Weight)
		s.Equal(a.From, b.To)
	}
}

func (s *TopologySuite) TestRandomSparse() {
	g := s.build(nil, nil, builder.RandomSparse(6, 1))
	s.Equal(15, g.EdgeCount())
	g = s.build(nil, nil, builder.RandomSparse(6, 0))
	s.Zero(g.EdgeCount())

	d := s.build([]core.GraphOption{core.WithDirected(), core.WithLoops()}, nil, builder.RandomSparse(4, 1))
	s.Equal(16, d.EdgeCount())

	a := s.build(nil, []builder.BuilderOption{builder.WithSeed(8)}, builder.RandomSparse(40, 0.2))
	b := s.build(nil, []builder.BuilderOption{builder.WithSeed(8)}, builder.RandomSparse(40, 0.2))
	s.Equal(a.EdgeCount(), b.EdgeCount())
	s.Positive(a.EdgeCount())
}

func (s *TopologySuite) TestRandomTree() {
	g := s.build(nil, []builder.BuilderOption{builder.WithSeed(4)}, builder.RandomTree(50))
	s.Equal(50, g.VertexCount())
	s.Equal(49, g.EdgeCount())
	for _, e := range g.Edges() {
		s.Less(e.From, e.To, "parent precedes child")
	}

	parents := builder.RandomParents(30, 3, builder.WithSeed(2))
	s.Len(parents, 30)
	for v, p := range parents {
		if v < 3 {
			s.Equal(-1, p)
			continue
		}
		s.True(p >= 0 && p < v)
	}
	s.Nil(builder.RandomParents(5, 0))
	s.Nil(builder.RandomParents(0, 1))
}

func (s *TopologySuite) TestErrors() {
	cases := []struct {
		con builder.Constructor
		err error
	}{
		{builder.Path(1), builder.ErrTooFewVertices},
		{builder.Cycle(2), builder.ErrTooFewVertices},
		{builder.Star(1), builder.ErrTooFewVertices},
		{builder.Wheel(3), builder.ErrTooFewVertices},
		{builder.Complete(0), builder.ErrTooFewVertices},
		{builder.Grid(0, 3), builder.ErrTooFewVertices},
		{builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{builder.RandomTree(5), builder.ErrNeedRandSource},
		{nil, builder.ErrConstructFailed},
	}
	for i, tc := range cases {
		_, err := builder.BuildGraph(nil, nil, tc.con)
		s.ErrorIs(err, tc.err, "case %d", i)
	}

	_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithWeightFn(func(_ *rand.Rand) float64 { return math.NaN() })}, builder.Path(2))
	s.ErrorIs(err, core.ErrBadWeight)
}

func TestTopologySuite(t *testing.T) {
	suite.Run(t, new(TopologySuite))
}

func TestSequences(t *testing.T) {
	walk, err := builder.PlusMinusOneWalk(200, 1)
	require.NoError(t, err)
	assert.Zero(t, walk[0])
	for i := 1; i < len(walk); i++ {
		d := walk[i] - walk[i-1]
		assert.True(t, d == 1 || d == -1)
	}

	a, err := builder.RandomInts(100, 10, 7)
	require.NoError(t, err)
	b, err := builder.RandomInts(100, 10, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	for _, x := range a {
		assert.True(t, x >= 0 && x < 10)
	}

	_, err = builder.RandomInts(0, 10, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.RandomInts(5, 0, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.PlusMinusOneWalk(0, 1)
	assert.ErrorIs(t, err, builder.ErrBadSize)
}
