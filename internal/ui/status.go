package ui

import "fmt"

// Run is the read side of a life run shown on the HUD.
type Run interface {
	Generation() int
	Population() int
	Running() bool
}

// Status is a snapshot of the values the HUD displays.
type Status struct {
	Generation int
	Population int
	Running    bool
}

// StatusOf snapshots r.
func StatusOf(r Run) Status {
	return Status{Generation: r.Generation(), Population: r.Population(), Running: r.Running()}
}

func (s Status) String() string {
	state := "paused"
	if s.Running {
		state = "running"
	}
	return fmt.Sprintf("gen %d  pop %d  %s", s.Generation, s.Population, state)
}
