package game

// PathScorer answers the two graph questions the scoring engine asks
// about a player's claimed routes: whether two cities are connected,
// and the length of the longest continuous path.
type PathScorer interface {
	Connected(routes []*Route, from, to string) bool
	LongestPath(routes []*Route) int
}

// graphScorer is the default PathScorer.
type graphScorer struct{}

// NewPathScorer returns the default graph implementation.
func NewPathScorer() PathScorer { return graphScorer{} }

// Connected reports whether from and to lie in the same connected
// component of the claimed-route subgraph. Union-find over the edges.
func (graphScorer) Connected(routes []*Route, from, to string) bool {
	if from == to {
		return true
	}
	parent := make(map[string]string)
	var find func(string) string
	find = func(c string) string {
		p, ok := parent[c]
		if !ok || p == c {
			parent[c] = c
			return c
		}
		root := find(p)
		parent[c] = root
		return root
	}
	for _, r := range routes {
		a, b := find(r.CityA), find(r.CityB)
		if a != b {
			parent[a] = b
		}
	}
	if _, ok := parent[from]; !ok {
		return false
	}
	if _, ok := parent[to]; !ok {
		return false
	}
	return find(from) == find(to)
}

// LongestPath returns the longest simple path (no edge reused, summed
// by route length) through the claimed-route multigraph. Exhaustive
// DFS from every city; a player claims at most 45 train cars' worth of
// routes, and real claim sets branch little, so this stays cheap.
func (graphScorer) LongestPath(routes []*Route) int {
	if len(routes) == 0 {
		return 0
	}
	adj := make(map[string][]int)
	for i, r := range routes {
		adj[r.CityA] = append(adj[r.CityA], i)
		adj[r.CityB] = append(adj[r.CityB], i)
	}
	used := make([]bool, len(routes))
	best := 0

	var dfs func(city string, length int)
	dfs = func(city string, length int) {
		if length > best {
			best = length
		}
		for _, i := range adj[city] {
			if used[i] {
				continue
			}
			r := routes[i]
			next := r.CityB
			if city == r.CityB {
				next = r.CityA
			}
			used[i] = true
			dfs(next, length+r.Length)
			used[i] = false
		}
	}
	for city := range adj {
		dfs(city, 0)
	}
	return best
}
