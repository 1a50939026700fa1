package prim_kruskal_test

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wugraph/builder"
	"github.com/katalvlaran/wugraph/core"
	"github.com/katalvlaran/wugraph/prim_kruskal"
	"github.com/katalvlaran/wugraph/unionfind"
)

// solver is a spanning-forest algorithm under test.
type solver struct {
	name string
	fn   func(*core.Graph[string]) *core.Graph[string]
}

var solvers = []solver{
	{"Kruskal", prim_kruskal.MinSpanTree[string]},
	{"Prim", prim_kruskal.Prim[string]},
}

// buildSquare constructs the 4-cycle A-B-C-D-A with weights 1,2,3,4 and a chord A-C(5).
// Its MST is {A-B, B-C, C-D} with total weight 6.
func buildSquare() *core.Graph[string] {
	g := core.NewGraph[string]()
	for _, v := range []string{"A", "B", "C", "D"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("C", "D", 3)
	g.AddEdge("A", "D", 4)
	g.AddEdge("A", "C", 5)

	return g
}

// buildTwoTriangles constructs two disjoint triangles {A,B,C} and {X,Y,Z}.
func buildTwoTriangles() *core.Graph[string] {
	g := core.NewGraph[string]()
	for _, v := range []string{"A", "B", "C", "X", "Y", "Z"} {
		g.AddVertex(v)
	}
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 3)
	g.AddEdge("X", "Y", 7)
	g.AddEdge("Y", "Z", 8)
	g.AddEdge("X", "Z", 9)

	return g
}

// buildMediumGraph creates a connected graph with n vertices "V0".."V(n-1)":
// a chain with weights in [1..10] plus `extra` random edges with weights in [1..100].
// The rng is seeded so the graph is always the same.
func buildMediumGraph(n, extra int) *core.Graph[string] {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithPrefixIDs("V"), builder.WithUniformWeights(1, 10)},
		builder.Path(n),
	)
	if err != nil {
		panic(err)
	}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < extra; i++ {
		u, v := r.Intn(n), r.Intn(n)
		g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), 1+r.Int63n(100))
	}

	return g
}

// edgeSet returns the edges of g as sorted "u-v:w" strings.
func edgeSet(g *core.Graph[string]) []string {
	out := make([]string, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		u, v := e.From, e.To
		if v < u {
			u, v = v, u
		}
		out = append(out, fmt.Sprintf("%s-%s:%d", u, v, e.Weight))
	}
	sort.Strings(out)

	return out
}

// bruteForceMinForest enumerates every edge subset of size |V|-c and returns the
// smallest total weight among those forming a forest. Only usable on tiny graphs.
func bruteForceMinForest(g *core.Graph[string]) int64 {
	vertices := g.Vertices()
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}
	var edges []core.Edge[string]
	for _, e := range g.Edges() {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	k := len(vertices) - prim_kruskal.Components(g)

	best := int64(math.MaxInt64)
	chosen := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(chosen) == k {
			ds := unionfind.New(len(vertices))
			var total int64
			for _, i := range chosen {
				if !ds.Union(index[edges[i].From], index[edges[i].To]) {
					return
				}
				total += edges[i].Weight
			}
			if total < best {
				best = total
			}
			return
		}
		for i := start; i <= len(edges)-(k-len(chosen)); i++ {
			chosen = append(chosen, i)
			rec(i + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	rec(0)

	return best
}

func TestMinSpanTree_Square(t *testing.T) {
	g := buildSquare()
	mst := prim_kruskal.MinSpanTree(g)

	assert.Equal(t, []string{"A-B:1", "B-C:2", "C-D:3"}, edgeSet(mst))
	assert.Equal(t, int64(6), mst.TotalWeight())
	assert.ElementsMatch(t, g.Vertices(), mst.Vertices())
	// the input is untouched
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge("A", "C"))
}

func TestSolvers_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		build     func() *core.Graph[string]
		wantV     int
		wantE     int
		wantTotal int64
	}{
		{"Square", buildSquare, 4, 3, 6},
		{"TwoTriangles", buildTwoTriangles, 6, 4, 18},
		{"Empty", core.NewGraph[string], 0, 0, 0},
		{"SingleVertex", func() *core.Graph[string] {
			g := core.NewGraph[string]()
			g.AddVertex("A")
			return g
		}, 1, 0, 0},
		{"NoEdges", func() *core.Graph[string] {
			g := core.NewGraph[string]()
			for _, v := range []string{"A", "B", "C"} {
				g.AddVertex(v)
			}
			return g
		}, 3, 0, 0},
		{"OnlySelfEdge", func() *core.Graph[string] {
			g := core.NewGraph[string]()
			g.AddVertex("A")
			g.AddEdge("A", "A", -5)
			return g
		}, 1, 0, 0},
		{"NegativeWeights", func() *core.Graph[string] {
			g := buildSquare()
			g.AddEdge("A", "C", -10)
			return g
		}, 4, 3, -6},
	}

	for _, tc := range tests {
		for _, s := range solvers {
			t.Run(tc.name+"/"+s.name, func(t *testing.T) {
				g := tc.build()
				f := s.fn(g)
				require.NotNil(t, f)
				assert.Equal(t, tc.wantV, f.VertexCount())
				assert.Equal(t, tc.wantE, f.EdgeCount())
				assert.Equal(t, tc.wantTotal, f.TotalWeight())
				assert.True(t, prim_kruskal.IsSpanningForest(g, f), "not a spanning forest")
			})
		}
	}
}

func TestSolvers_NilInput(t *testing.T) {
	for _, s := range solvers {
		f := s.fn(nil)
		require.NotNil(t, f, s.name)
		assert.Zero(t, f.VertexCount(), s.name)
	}
}

func TestSolvers_SelfEdgesIgnored(t *testing.T) {
	g := buildSquare()
	g.AddEdge("B", "B", -100)
	for _, s := range solvers {
		f := s.fn(g)
		assert.False(t, f.HasEdge("B", "B"), s.name)
		assert.Equal(t, int64(6), f.TotalWeight(), s.name)
	}
}

func TestSolvers_OutputIndependentOfInput(t *testing.T) {
	for _, s := range solvers {
		g := buildSquare()
		f := s.fn(g)
		f.RemoveEdge("A", "B")
		f.AddVertex("Q")
		assert.True(t, g.HasEdge("A", "B"), s.name)
		assert.False(t, g.HasVertex("Q"), s.name)

		before, edges := f.VertexCount(), f.EdgeCount()
		g.Clear()
		assert.Equal(t, 5, before, s.name)
		assert.Equal(t, before, f.VertexCount(), s.name)
		assert.Equal(t, edges, f.EdgeCount(), s.name)
	}
}

func TestSolvers_Idempotent(t *testing.T) {
	g := buildMediumGraph(60, 200)
	for _, s := range solvers {
		once := s.fn(g)
		twice := s.fn(once)
		assert.Equal(t, edgeSet(once), edgeSet(twice), s.name)
	}
}

func TestMinSpanTree_Deterministic(t *testing.T) {
	// Many equal weights: tie-breaking must not depend on map iteration.
	g, err := builder.BuildGraph(nil, builder.Complete(9))
	require.NoError(t, err)
	first := edgeSet(prim_kruskal.MinSpanTree(g))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, edgeSet(prim_kruskal.MinSpanTree(g)))
	}
}

func TestSolvers_MatchBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		n := 2 + int(seed%6) // 2..7 vertices
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeights(-5, 20)},
			builder.RandomSparse(n, 0.5),
		)
		require.NoError(t, err)
		want := bruteForceMinForest(g)

		for _, s := range solvers {
			f := s.fn(g)
			require.True(t, prim_kruskal.IsSpanningForest(g, f), "seed=%d %s", seed, s.name)
			assert.Equal(t, want, f.TotalWeight(), "seed=%d %s", seed, s.name)
		}
	}
}

func TestKruskalPrim_AgreeOnMediumGraph(t *testing.T) {
	g := buildMediumGraph(300, 1200)
	k := prim_kruskal.MinSpanTree(g)
	p := prim_kruskal.Prim(g)

	assert.Equal(t, g.VertexCount()-1, k.EdgeCount())
	assert.Equal(t, k.EdgeCount(), p.EdgeCount())
	assert.Equal(t, k.TotalWeight(), p.TotalWeight())
	assert.Equal(t, 1, prim_kruskal.Components(k))
}

func TestMinSpanTree_IntLabels(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 5; i++ {
		g.AddVertex(i)
	}
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			g.AddEdge(i, j, int64(i+j))
		}
	}
	mst := prim_kruskal.MinSpanTree(g)

	// the star around 0 has weights 1+2+3+4
	want := []core.Edge[int]{{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 2}, {From: 0, To: 3, Weight: 3}, {From: 0, To: 4, Weight: 4}}
	got := mst.Edges()
	for i := range got {
		if got[i].From > got[i].To {
			got[i].From, got[i].To = got[i].To, got[i].From
		}
	}
	less := func(a, b core.Edge[int]) bool { return a.To < b.To }
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less)); diff != "" {
		t.Errorf("MinSpanTree(K5) mismatch (-want +got):\n%s", diff)
	}
}

func TestComponents(t *testing.T) {
	assert.Equal(t, 0, prim_kruskal.Components[string](nil))
	assert.Equal(t, 0, prim_kruskal.Components(core.NewGraph[string]()))
	assert.Equal(t, 1, prim_kruskal.Components(buildSquare()))
	assert.Equal(t, 2, prim_kruskal.Components(buildTwoTriangles()))

	g := buildTwoTriangles()
	g.AddVertex("lonely")
	g.AddEdge("lonely", "lonely", 3)
	assert.Equal(t, 3, prim_kruskal.Components(g))
}

func TestIsSpanningForest_Rejects(t *testing.T) {
	g := buildSquare()

	cyclic := g.CloneEmpty()
	cyclic.AddEdge("A", "B", 1)
	cyclic.AddEdge("B", "C", 2)
	cyclic.AddEdge("A", "C", 5)
	assert.False(t, prim_kruskal.IsSpanningForest(g, cyclic), "cycle")

	short := g.CloneEmpty()
	short.AddEdge("A", "B", 1)
	assert.False(t, prim_kruskal.IsSpanningForest(g, short), "does not span")

	wrongWeight := prim_kruskal.MinSpanTree(g)
	wrongWeight.AddEdge("A", "B", 99)
	assert.False(t, prim_kruskal.IsSpanningForest(g, wrongWeight), "weight mismatch")

	foreign := prim_kruskal.MinSpanTree(g)
	foreign.RemoveEdge("C", "D")
	foreign.AddEdge("B", "D", 1)
	assert.False(t, prim_kruskal.IsSpanningForest(g, foreign), "edge not in g")

	extraVertex := prim_kruskal.MinSpanTree(g)
	extraVertex.AddVertex("E")
	assert.False(t, prim_kruskal.IsSpanningForest(g, extraVertex), "vertex sets differ")

	assert.True(t, prim_kruskal.IsSpanningForest[string](nil, nil))
	assert.False(t, prim_kruskal.IsSpanningForest(g, nil))
}
