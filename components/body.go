package components

// Body holds the fixed drawing properties chosen at spawn.
type Body struct {
	Size  float64 // silhouette scale, in [2, 5)
	Color Color   // palette index
}

// Breakaway holds the leader state machine.
// Timer is only meaningful while Active.
type Breakaway struct {
	Active bool
	Timer  int // ticks remaining
}
