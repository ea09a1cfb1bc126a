package engine

// Snapshot is a read-only copy of session state for observers
type Snapshot struct {
	Tick      uint64  `json:"tick"`
	ElapsedMs int64   `json:"elapsedMs"`
	X         float64 `json:"x"`
	Z         float64 `json:"z"`
	Yaw       float64 `json:"yaw"`

	Hidden  bool `json:"hidden"`
	CanHide bool `json:"canHide"`

	Completed   int   `json:"completed"`
	ProgressPct int   `json:"progressPct"`
	Unlocked    []int `json:"unlocked"`

	NextTriggerInMs int64 `json:"nextTriggerInMs"`
	WarningPlayed   bool  `json:"warningPlayed"`
	Overlay         bool  `json:"overlay"`
	Cycles          int   `json:"cycles"`

	Over    bool             `json:"over"`
	Metrics map[string]int64 `json:"metrics,omitempty"`
}

// TakeSnapshot copies the current resources
// Call from the goroutine that drives the world, or under WithWorldLock
func (w *World) TakeSnapshot() Snapshot {
	r := w.Resources
	snap := Snapshot{
		Tick:          r.Clock.Tick,
		ElapsedMs:     r.Clock.Now.Milliseconds(),
		X:             r.Player.Pose.X,
		Z:             r.Player.Pose.Z,
		Yaw:           r.Player.Pose.Yaw,
		Hidden:        r.Visibility.Hidden,
		CanHide:       r.Visibility.CanHide,
		Completed:     r.Progress.Completed,
		ProgressPct:   r.Progress.Percent(r.Tuning.MaxProgress),
		Unlocked:      r.Points.IDs(),
		WarningPlayed: r.Encounter.Played,
		Overlay:       r.Encounter.Display,
		Cycles:        r.Encounter.Cycles,
		Over:          r.Session.Over,
	}
	if r.Encounter.Armed {
		snap.NextTriggerInMs = (r.Encounter.NextTriggerAt - r.Clock.Now).Milliseconds()
	}
	if r.Status != nil {
		snap.Metrics = r.Status.IntSnapshot()
	}
	return snap
}
