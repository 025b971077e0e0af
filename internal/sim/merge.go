package sim

import "github.com/jakecoffman/cp"

// mergePlan records one fusion decided during the pairwise scan.
type mergePlan struct {
	a, b *Object
	into Tier
	at   cp.Vector
}

// Merge is a fusion that happened during a tick.
type Merge struct {
	From    Tier
	Into    Tier
	Product ObjectID
	X, Y    float64
}

// planMerge claims a and b for a merge if they are eligible. Both objects are
// locked immediately so neither takes part in another pair this tick.
func planMerge(a, b *Object) (mergePlan, bool) {
	if !CanMerge(a, b) {
		return mergePlan{}, false
	}
	next, ok := a.Tier.Next()
	if !ok {
		return mergePlan{}, false
	}
	a.Merging = true
	b.Merging = true
	return mergePlan{
		a:    a,
		b:    b,
		into: next,
		at:   a.Pos.Add(b.Pos).Mult(0.5),
	}, true
}

// resolvePairs walks every pair once in creation order. Merges are only
// planned here; removals and insertions happen in applyMerges so the slice is
// never mutated while it is being scanned.
func (s *Simulation) resolvePairs() []mergePlan {
	var plans []mergePlan
	for i := 0; i < len(s.objects); i++ {
		a := s.objects[i]
		for j := i + 1; j < len(s.objects); j++ {
			if a.Merging {
				break
			}
			b := s.objects[j]
			if b.Merging || !s.detector.Collides(a, b) {
				continue
			}
			if plan, ok := planMerge(a, b); ok {
				plans = append(plans, plan)
				break
			}
			Separate(a, b)
		}
	}
	return plans
}

// applyMerges drops consumed objects, appends the products and pays out.
func (s *Simulation) applyMerges(plans []mergePlan) []Merge {
	if len(plans) == 0 {
		return nil
	}

	live := s.objects[:0]
	for _, o := range s.objects {
		if !o.Merging {
			live = append(live, o)
		}
	}
	for i := len(live); i < len(s.objects); i++ {
		s.objects[i] = nil
	}
	s.objects = live

	merges := make([]Merge, 0, len(plans))
	for _, p := range plans {
		product := s.newObject(p.into, p.at)
		s.add(product)
		s.score += s.cfg.MergeReward
		s.merges++
		merges = append(merges, Merge{
			From:    p.a.Tier,
			Into:    p.into,
			Product: product.ID,
			X:       p.at.X,
			Y:       p.at.Y,
		})
		s.logger.Debug("merge", "from", p.a.Tier, "into", p.into, "ids", []ObjectID{p.a.ID, p.b.ID}, "product", product.ID)
	}
	return merges
}
