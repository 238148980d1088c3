package game

import "sort"

// End-of-game scoring. Pure over the session state: calling it twice on
// an unmodified session yields identical results.

// PlayerScore is one scoreboard line.
type PlayerScore struct {
	PlayerID             string `json:"player_id"`
	Name                 string `json:"name"`
	RoutePoints          int    `json:"route_points"`
	TicketPointsPositive int    `json:"ticket_points_positive"`
	TicketPointsNegative int    `json:"ticket_points_negative"`
	LongestPath          int    `json:"longest_path"`
	LongestPathBonus     int    `json:"longest_path_bonus"`
	Total                int    `json:"total"`
}

// computeFinalScore builds the scoreboard:
//
//	total = route points
//	      + points of completed tickets
//	      - points of incomplete tickets
//	      + longest-path bonus (ties inclusive)
//
// Sorted by total descending; equal totals keep seat order, reported as
// a tie rather than broken arbitrarily.
func (s *Session) computeFinalScore(paths PathScorer) []PlayerScore {
	scores := make([]PlayerScore, len(s.Players))
	longest := make([]int, len(s.Players))
	maxPath := 0

	for i, p := range s.Players {
		routes := s.claimedRoutesOf(p.ID)
		line := PlayerScore{
			PlayerID:    p.ID,
			Name:        p.Name,
			RoutePoints: p.RoutePoints,
		}
		for _, t := range p.Tickets {
			if paths.Connected(routes, t.Origin, t.Destination) {
				line.TicketPointsPositive += t.Points
			} else {
				line.TicketPointsNegative += t.Points
			}
		}
		longest[i] = paths.LongestPath(routes)
		line.LongestPath = longest[i]
		if longest[i] > maxPath {
			maxPath = longest[i]
		}
		scores[i] = line
	}

	for i := range scores {
		// Ties-inclusive: every leader gets the bonus. A player with no
		// claimed routes never leads a non-zero maximum.
		if longest[i] == maxPath && maxPath > 0 {
			scores[i].LongestPathBonus = s.Rules.LongestPathBonus
		}
		scores[i].Total = scores[i].RoutePoints +
			scores[i].TicketPointsPositive -
			scores[i].TicketPointsNegative +
			scores[i].LongestPathBonus
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Total > scores[j].Total
	})
	return scores
}
