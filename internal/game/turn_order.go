package game

import "github.com/jlucieda/zombicide/internal/entity"

// TurnOrder implements the rotating first-player rule: whoever went first
// this round goes last the next. Dead survivors are dropped from each
// round's order but stay in the backing roster, and so still count for the
// rotation, until removed explicitly.
type TurnOrder struct {
	roster []*entity.Survivor // All survivors, dead ones included until removed
	first  int                // Index into roster of this round's first player
	order  []*entity.Survivor // This round's order, dead survivors dropped
	cursor int
	round  int
}

// NewTurnOrder builds the order for round 1. The roster slice is copied so
// later changes go through RemoveDead.
func NewTurnOrder(roster []*entity.Survivor) *TurnOrder {
	t := &TurnOrder{
		roster: append([]*entity.Survivor(nil), roster...),
		round:  1,
	}
	t.rebuild()
	return t
}

// rebuild recomputes the round's order: roster rotated to the first player,
// dead survivors dropped, cursor back to the top.
func (t *TurnOrder) rebuild() {
	t.order = t.order[:0]
	n := len(t.roster)
	for i := 0; i < n; i++ {
		s := t.roster[(t.first+i)%n]
		if s.Alive {
			t.order = append(t.order, s)
		}
	}
	t.cursor = 0
}

// Current returns the survivor at the cursor, or nil once the round's order
// is exhausted.
func (t *TurnOrder) Current() *entity.Survivor {
	if t.cursor >= len(t.order) {
		return nil
	}
	return t.order[t.cursor]
}

// Next advances the cursor and returns the new current survivor, or nil at
// the end of the order.
func (t *TurnOrder) Next() *entity.Survivor {
	t.cursor++
	return t.Current()
}

// HasMore reports whether any survivor is still due to act this round.
func (t *TurnOrder) HasMore() bool {
	return t.cursor < len(t.order)
}

// AdvanceRound rotates the first player, bumps the round number, and
// rebuilds the order.
func (t *TurnOrder) AdvanceRound() {
	if len(t.roster) > 0 {
		t.first = (t.first + 1) % len(t.roster)
	}
	t.round++
	t.rebuild()
}

// FirstPlayer returns this round's first player, or nil with no survivors
// left.
func (t *TurnOrder) FirstPlayer() *entity.Survivor {
	if len(t.order) == 0 {
		return nil
	}
	return t.order[0]
}

// RemoveDead drops a survivor from the backing roster and rebuilds the
// current order. The first-player index shifts down when the removal comes
// before it and wraps to the top when it falls off the end.
func (t *TurnOrder) RemoveDead(s *entity.Survivor) {
	idx := -1
	for i, rs := range t.roster {
		if rs == s {
			idx = i
			break
		}
	}
	if idx >= 0 {
		t.roster = append(t.roster[:idx], t.roster[idx+1:]...)
		if idx < t.first {
			t.first--
		} else if idx == t.first && t.first >= len(t.roster) {
			t.first = 0
		}
	}
	t.rebuild()
}

// Round returns the current round number.
func (t *TurnOrder) Round() int { return t.round }

// PositionOf returns the survivor's 0-based position in this round's order,
// or -1 if it is not part of it.
func (t *TurnOrder) PositionOf(s *entity.Survivor) int {
	for i, os := range t.order {
		if os == s {
			return i
		}
	}
	return -1
}

// IsLastInRound reports whether the cursor sits on the final survivor of
// the round.
func (t *TurnOrder) IsLastInRound() bool {
	return t.cursor == len(t.order)-1
}

// Remaining returns how many survivors have yet to finish acting this
// round, the current one included.
func (t *TurnOrder) Remaining() int {
	if t.cursor >= len(t.order) {
		return 0
	}
	return len(t.order) - t.cursor
}

// Reset restarts the rotation for a new session with a fresh roster.
func (t *TurnOrder) Reset(roster []*entity.Survivor) {
	t.roster = append([]*entity.Survivor(nil), roster...)
	t.first = 0
	t.round = 1
	t.rebuild()
}

// OrderInfo is a display snapshot of the rotation.
type OrderInfo struct {
	Round       int
	FirstPlayer string
	Current     string
	Order       []string
	Remaining   int
}

// Info returns a snapshot of the rotation for the display layer.
func (t *TurnOrder) Info() OrderInfo {
	info := OrderInfo{
		Round:     t.round,
		Remaining: t.Remaining(),
		Order:     make([]string, len(t.order)),
	}
	for i, s := range t.order {
		info.Order[i] = s.Name
	}
	if fp := t.FirstPlayer(); fp != nil {
		info.FirstPlayer = fp.Name
	}
	if cur := t.Current(); cur != nil {
		info.Current = cur.Name
	}
	return info
}
