package core

type Side int

const (
	Left Side = iota
	Right
)

var sideName = map[Side]string{
	Left:  "left",
	Right: "right",
}

func (s Side) String() string {
	return sideName[s]
}

// Scorer returns the index of the player awarded a point when the ball
// crosses this side. Crossing the right edge is a point for player 0.
func (s Side) Scorer() int {
	if s == Right {
		return 0
	}
	return 1
}
