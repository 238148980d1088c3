package game

// Rules holds the configurable rule settings of a match.
type Rules struct {
	TrainsPerPlayer      int
	DisplaySize          int
	DrawQuota            int
	LongestPathBonus     int
	FinalRoundThreshold  int // remaining trains at or below this triggers the final round
	InitialTicketOffer   int
	InitialTicketMinKeep int
	MidgameTicketOffer   int
	MidgameTicketMinKeep int
	// LocomotiveFlushLimit redeals the face-up display when it holds this
	// many locomotives. 0 disables the rule.
	LocomotiveFlushLimit int
	CardsPerColor        int
	LocomotiveCount      int
}

// DefaultRules returns the standard rule set.
func DefaultRules() Rules {
	return Rules{
		TrainsPerPlayer:      45,
		DisplaySize:          5,
		DrawQuota:            2,
		LongestPathBonus:     10,
		FinalRoundThreshold:  2,
		InitialTicketOffer:   3,
		InitialTicketMinKeep: 2,
		MidgameTicketOffer:   3,
		MidgameTicketMinKeep: 1,
		LocomotiveFlushLimit: 3,
		CardsPerColor:        12,
		LocomotiveCount:      14,
	}
}

// routePoints is the fixed length→points table for claimed routes.
var routePoints = map[int]int{
	1: 1,
	2: 2,
	3: 4,
	4: 7,
	5: 10,
	6: 15,
}

// PointsForLength returns the score awarded for claiming a route of the
// given length.
func PointsForLength(length int) int {
	return routePoints[length]
}
