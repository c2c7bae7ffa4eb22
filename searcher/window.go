package searcher

import "github.com/Amelia10007/minimax-strategy/game"

// window is the interval of payoff values still relevant to a search: the
// alpha-beta bounds. A constructed window always satisfies lo <= hi.
type window[P game.Payoff[P]] struct {
	lo, hi P
}

// tryWindow builds a window from lo and hi. ok == false signals an empty
// window (lo > hi), which is the pruning trigger: once the interval is
// empty, remaining sibling actions cannot change the decision.
func tryWindow[P game.Payoff[P]](lo, hi P) (window[P], bool) {
	if lo.Compare(hi) > 0 {
		return window[P]{}, false
	}
	return window[P]{lo: lo, hi: hi}, true
}

// raiseLo narrows the window from below after a child scored v in a
// maximizing context. The window never widens: v at or below the current
// lower bound leaves it unchanged.
func (w window[P]) raiseLo(v P) (window[P], bool) {
	if v.Compare(w.lo) <= 0 {
		return w, true
	}
	return tryWindow(v, w.hi)
}

// lowerHi narrows the window from above after a child scored v in a
// minimizing context.
func (w window[P]) lowerHi(v P) (window[P], bool) {
	if v.Compare(w.hi) >= 0 {
		return w, true
	}
	return tryWindow(w.lo, v)
}
