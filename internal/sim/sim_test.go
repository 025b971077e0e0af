package sim

import (
	"math"
	"testing"
)

func TestMergeEveryTier(t *testing.T) {
	for _, tier := range AllTiers() {
		next, ok := tier.Next()
		if !ok {
			continue
		}
		t.Run(tier.String(), func(t *testing.T) {
			s := New(DefaultConfig())
			r := DefaultConfig().Tiers.Radius(tier, DefaultConfig().Field)
			s.Place(tier, 150, 300, true)
			s.Place(tier, 150+r, 300, true)

			s.Step(1)

			snap := s.Snapshot()
			if len(snap.Objects) != 1 {
				t.Fatalf("objects after merge = %d, expected 1", len(snap.Objects))
			}
			got := snap.Objects[0]
			if got.Tier != next {
				t.Errorf("product tier = %v, expected %v", got.Tier, next)
			}
			if math.Abs(got.X-(150+r/2)) > 1e-9 || got.Y != 300 {
				t.Errorf("product at (%v, %v), expected (%v, 300)", got.X, got.Y, 150+r/2)
			}
			if got.Static {
				t.Error("merge product should not be static")
			}
			if got.ID == 1 || got.ID == 2 {
				t.Errorf("product reused an input id %d", got.ID)
			}
			if s.Score() != 10 {
				t.Errorf("Score() = %d, expected 10", s.Score())
			}
			if r := s.LastReport(); r.ScoreDelta != 10 || len(r.Merges) != 1 {
				t.Errorf("LastReport() = %+v", r)
			}
		})
	}
}

func TestTerminalPairDoesNotMerge(t *testing.T) {
	s := New(DefaultConfig())
	s.Place(BlackHole, 150, 300, true)
	s.Place(BlackHole, 250, 300, true)

	s.Step(1)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", s.Len())
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
}

func TestMergeLocksPartners(t *testing.T) {
	s := New(DefaultConfig())
	s.Place(Meteor, 100, 300, true)
	s.Place(Meteor, 140, 300, true)
	s.Place(Meteor, 180, 300, true)

	s.Step(1)

	snap := s.Snapshot()
	if len(snap.Objects) != 2 {
		t.Fatalf("objects = %d, expected 2", len(snap.Objects))
	}
	if snap.Objects[0].Tier != Meteor || snap.Objects[0].X != 180 {
		t.Errorf("untouched meteor = %+v", snap.Objects[0])
	}
	if snap.Objects[1].Tier != Mars || snap.Objects[1].X != 120 {
		t.Errorf("product = %+v, expected Mars at x=120", snap.Objects[1])
	}
	if s.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", s.Score())
	}
}

func TestDropOntoMatchingMeteor(t *testing.T) {
	s := New(DefaultConfig())
	s.Place(Meteor, 200, 580, true)

	s.SpawnControlled(Meteor)
	s.SetControlledX(200)
	if !s.Release() {
		t.Fatal("Release() = false with a held object")
	}

	for i := 0; i < 200 && s.Score() == 0; i++ {
		if s.Step(1) {
			t.Fatalf("unexpected game over at tick %d", i)
		}
	}

	snap := s.Snapshot()
	if len(snap.Objects) != 1 {
		t.Fatalf("objects = %d, expected 1", len(snap.Objects))
	}
	mars := snap.Objects[0]
	if mars.Tier != Mars {
		t.Errorf("tier = %v, expected Mars", mars.Tier)
	}
	if mars.X != 200 {
		t.Errorf("X = %v, expected 200", mars.X)
	}
	// The falling meteor first overlaps between y=516 and the floor at 568.
	if mars.Y <= 548 || mars.Y > 574 {
		t.Errorf("Y = %v, expected the midpoint of the two meteors", mars.Y)
	}
	if s.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", s.Score())
	}
	if snap.BestTier != Mars {
		t.Errorf("BestTier = %v, expected Mars", snap.BestTier)
	}
}

func TestSettlesOnFloor(t *testing.T) {
	s := New(DefaultConfig())
	s.Place(Meteor, 200, 500, false)

	for i := 0; i < 500; i++ {
		s.Step(1)
	}

	o := s.Snapshot().Objects[0]
	if !o.Static {
		t.Fatal("object never came to rest")
	}
	if o.Y != 568 {
		t.Errorf("resting Y = %v, expected 568", o.Y)
	}

	s.Step(1)
	if again := s.Snapshot().Objects[0]; again.Y != o.Y || again.X != o.X {
		t.Errorf("static object moved from (%v, %v) to (%v, %v)", o.X, o.Y, again.X, again.Y)
	}
}

func TestGameOverFreezes(t *testing.T) {
	s := New(DefaultConfig())
	s.Place(Meteor, 200, 32, true)
	s.Place(Mars, 80, 300, false)

	if !s.Step(1) {
		t.Fatal("Step() = false, expected game over when an object touches the top")
	}
	if !s.GameOver() {
		t.Fatal("GameOver() = false")
	}

	before := s.Snapshot()
	for i := 0; i < 5; i++ {
		if s.Step(1) {
			t.Error("Step() after game over should not report a new game over")
		}
	}
	after := s.Snapshot()

	if after.Tick != before.Tick {
		t.Errorf("tick advanced after game over: %d -> %d", before.Tick, after.Tick)
	}
	for i := range before.Objects {
		if before.Objects[i] != after.Objects[i] {
			t.Errorf("object %d moved after game over: %+v -> %+v", i, before.Objects[i], after.Objects[i])
		}
	}
}

func TestControlledObject(t *testing.T) {
	s := New(DefaultConfig())

	if s.Release() {
		t.Error("Release() with nothing held should be a no-op")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after empty release", s.Len())
	}

	s.SpawnControlled(Earth)
	held, ok := s.Controlled()
	if !ok {
		t.Fatal("Controlled() reported nothing after spawn")
	}
	if held.X != 200 || held.Y != 50 {
		t.Errorf("spawn at (%v, %v), expected (200, 50)", held.X, held.Y)
	}

	tests := []struct {
		x, expected float64
	}{
		{0, 30},
		{1000, 370},
		{123, 123},
	}
	for _, tc := range tests {
		s.SetControlledX(tc.x)
		if held, _ := s.Controlled(); held.X != tc.expected {
			t.Errorf("SetControlledX(%v) -> %v, expected %v", tc.x, held.X, tc.expected)
		}
	}

	s.Step(1)
	if held, _ := s.Controlled(); held.Y != 50 {
		t.Errorf("held object fell to %v before release", held.Y)
	}

	s.Release()
	if _, ok := s.Controlled(); ok {
		t.Error("object still held after release")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d after release, expected 1", s.Len())
	}
	s.Step(1)
	if o := s.Snapshot().Objects[0]; o.Y != 55.5 {
		t.Errorf("released object at y=%v after one step, expected 55.5", o.Y)
	}
}

type pendingMasks struct{}

func (pendingMasks) Mask(_ Tier, diameter int) *Mask {
	return NewPendingMask(diameter)
}

func TestPixelModeUnreadyMasks(t *testing.T) {
	tests := []struct {
		policy UnreadyPolicy
		merged bool
	}{
		{UnreadyIgnore, false},
		{UnreadyCircle, true},
	}

	for _, tc := range tests {
		t.Run(tc.policy.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Collision.PixelPerfect = true
			cfg.Collision.Unready = tc.policy

			s := New(cfg, WithMasks(pendingMasks{}))
			s.Place(Meteor, 150, 300, true)
			s.Place(Meteor, 190, 300, true)
			s.Step(1)

			if merged := s.Score() == 10; merged != tc.merged {
				t.Errorf("merged = %v, expected %v", merged, tc.merged)
			}
		})
	}
}

func TestPixelModeCircleMasks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Collision.PixelPerfect = true

	s := New(cfg)
	s.Place(Meteor, 150, 300, true)
	s.Place(Meteor, 190, 300, true)
	s.Step(1)

	if s.Score() != 10 {
		t.Errorf("Score() = %d, expected a merge with procedural masks", s.Score())
	}
	if m := s.Snapshot().Objects[0].Mask; !m.Ready() || m.Size() != MaskDiameter(38.4) {
		t.Errorf("product mask = %+v", m)
	}
}
