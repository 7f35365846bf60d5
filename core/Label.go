package core

type LabelSize int

const (
	LabelSmall LabelSize = iota
	LabelLarge
)

// Label is a piece of UI text anchored at its top-left world position.
type Label struct {
	Position Vector
	Text     string
	Size     LabelSize
}

// Segment is a vertical line from Y0 to Y1 at X.
type Segment struct {
	X, Y0, Y1 float64
}
