package game

import "fmt"

// City is a node on the board.
type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Route is an edge between two cities. Color is ColorAny for gray routes.
// Ownership lives on the Session, not here: the board is read-only and
// shared by every match.
type Route struct {
	ID     string `json:"id"`
	CityA  string `json:"city_a"`
	CityB  string `json:"city_b"`
	Color  Color  `json:"color"`
	Length int    `json:"length"`
}

// Board is the static city/route topology of the map.
type Board struct {
	Cities map[string]City
	Routes map[string]*Route
}

// NewBoard builds a board and checks basic topology consistency.
func NewBoard(cities []City, routes []*Route) (*Board, error) {
	b := &Board{
		Cities: make(map[string]City, len(cities)),
		Routes: make(map[string]*Route, len(routes)),
	}
	for _, c := range cities {
		if _, dup := b.Cities[c.ID]; dup {
			return nil, fmt.Errorf("duplicate city %q", c.ID)
		}
		b.Cities[c.ID] = c
	}
	for _, r := range routes {
		if _, dup := b.Routes[r.ID]; dup {
			return nil, fmt.Errorf("duplicate route %q", r.ID)
		}
		if _, ok := b.Cities[r.CityA]; !ok {
			return nil, fmt.Errorf("route %q references unknown city %q", r.ID, r.CityA)
		}
		if _, ok := b.Cities[r.CityB]; !ok {
			return nil, fmt.Errorf("route %q references unknown city %q", r.ID, r.CityB)
		}
		if r.Length < 1 || r.Length > 6 {
			return nil, fmt.Errorf("route %q has length %d, want 1..6", r.ID, r.Length)
		}
		b.Routes[r.ID] = r
	}
	return b, nil
}

// Route returns the route with the given id.
func (b *Board) Route(id string) (*Route, bool) {
	r, ok := b.Routes[id]
	return r, ok
}
