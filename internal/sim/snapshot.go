package sim

// ObjectView is a read-only copy of an object for rendering.
type ObjectView struct {
	ID       ObjectID
	Tier     Tier
	X, Y     float64
	Radius   float64
	Rotation float64
	Scale    float64
	Static   bool
	Mask     *Mask
}

// Snapshot is the state a front end needs to draw a frame.
type Snapshot struct {
	Tick       uint64
	Objects    []ObjectView
	Controlled *ObjectView
	Score      int
	Merges     int
	BestTier   Tier
	GameOver   bool
	Field      Field
}

func (s *Simulation) view(o *Object) ObjectView {
	return ObjectView{
		ID:       o.ID,
		Tier:     o.Tier,
		X:        o.Pos.X,
		Y:        o.Pos.Y,
		Radius:   o.Radius,
		Rotation: o.Rotation,
		Scale:    o.Scale(s.cfg.Attraction.Pulse),
		Static:   o.Static,
		Mask:     o.Mask,
	}
}

// Snapshot copies the current state. Objects appear in creation order.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     s.tick,
		Objects:  make([]ObjectView, len(s.objects)),
		Score:    s.score,
		Merges:   s.merges,
		BestTier: s.best,
		GameOver: s.gameOver,
		Field:    s.cfg.Field,
	}
	for i, o := range s.objects {
		snap.Objects[i] = s.view(o)
	}
	if s.controlled != nil {
		v := s.view(s.controlled)
		snap.Controlled = &v
	}
	return snap
}
