package game

import (
	"testing"
)

func edge(id, a, b string, length int) *Route {
	return &Route{ID: id, CityA: a, CityB: b, Color: ColorAny, Length: length}
}

func TestConnectedSimpleChain(t *testing.T) {
	paths := NewPathScorer()
	routes := []*Route{
		edge("e1", "a", "b", 2),
		edge("e2", "b", "c", 3),
	}
	if !paths.Connected(routes, "a", "c") {
		t.Error("a and c should be connected through b")
	}
	if paths.Connected(routes, "a", "z") {
		t.Error("z is not on the graph at all")
	}
}

func TestConnectedDisjointComponents(t *testing.T) {
	paths := NewPathScorer()
	routes := []*Route{
		edge("e1", "a", "b", 2),
		edge("e2", "c", "d", 3),
	}
	if paths.Connected(routes, "a", "d") {
		t.Error("a and d lie in different components")
	}
	if !paths.Connected(routes, "c", "d") {
		t.Error("c and d share an edge")
	}
}

func TestConnectedSameCity(t *testing.T) {
	paths := NewPathScorer()
	if !paths.Connected(nil, "a", "a") {
		t.Error("a city is trivially connected to itself")
	}
}

func TestLongestPathLinear(t *testing.T) {
	paths := NewPathScorer()
	routes := []*Route{
		edge("e1", "a", "b", 2),
		edge("e2", "b", "c", 3),
		edge("e3", "c", "d", 1),
	}
	if got := paths.LongestPath(routes); got != 6 {
		t.Errorf("expected longest path 6, got %d", got)
	}
}

func TestLongestPathChoosesBestBranch(t *testing.T) {
	paths := NewPathScorer()
	// b branches to c (5) and d (1); the best walk takes a-b then b-c.
	routes := []*Route{
		edge("e1", "a", "b", 2),
		edge("e2", "b", "c", 5),
		edge("e3", "b", "d", 1),
	}
	if got := paths.LongestPath(routes); got != 7 {
		t.Errorf("expected longest path 7, got %d", got)
	}
}

func TestLongestPathCycleUsesEveryEdgeOnce(t *testing.T) {
	paths := NewPathScorer()
	routes := []*Route{
		edge("e1", "a", "b", 1),
		edge("e2", "b", "c", 2),
		edge("e3", "c", "a", 3),
	}
	// A cycle can be walked fully starting anywhere.
	if got := paths.LongestPath(routes); got != 6 {
		t.Errorf("expected longest path 6, got %d", got)
	}
}

func TestLongestPathDisjointTakesMax(t *testing.T) {
	paths := NewPathScorer()
	routes := []*Route{
		edge("e1", "a", "b", 2),
		edge("e2", "x", "y", 5),
	}
	if got := paths.LongestPath(routes); got != 5 {
		t.Errorf("expected longest path 5, got %d", got)
	}
}

func TestLongestPathEmpty(t *testing.T) {
	paths := NewPathScorer()
	if got := paths.LongestPath(nil); got != 0 {
		t.Errorf("expected 0 for no routes, got %d", got)
	}
}
