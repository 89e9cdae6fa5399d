package progression

import (
	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/domain"
)

// ResolveLevel returns the tier whose range contains xp. Negative totals
// resolve to the first tier.
func ResolveLevel(cat *catalog.Catalog, xp int) domain.LevelTier {
	tiers := cat.Tiers()
	for _, t := range tiers {
		if t.Contains(xp) {
			return t
		}
	}
	return tiers[0]
}

// Progress locates an XP total within the level table.
type Progress struct {
	Current domain.LevelTier
	// Next is nil at the last tier.
	Next    *domain.LevelTier
	Percent float64
	ToNext  int
}

// LevelProgress reports the current tier and how far xp is into it.
func LevelProgress(cat *catalog.Catalog, xp int) Progress {
	cur := ResolveLevel(cat, xp)
	p := Progress{Current: cur, Percent: 100}
	for _, t := range cat.Tiers() {
		if t.Level == cur.Level+1 {
			next := t
			p.Next = &next
			break
		}
	}
	if p.Next == nil {
		return p
	}
	span := cur.XPMax - cur.XPMin
	p.Percent = float64(xp-cur.XPMin) / float64(span) * 100
	p.ToNext = cur.XPMax - xp
	return p
}

// UnlockedFeatures returns every feature unlocked at or below level, in
// tier order.
func UnlockedFeatures(cat *catalog.Catalog, level int) []domain.Feature {
	var out []domain.Feature
	for _, t := range cat.Tiers() {
		if t.Level > level {
			break
		}
		out = append(out, t.Unlocks...)
	}
	return out
}
