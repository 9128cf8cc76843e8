// Package votes implements the up/down vote ledger attached to posts and
// comments. A ledger is two disjoint sets of voter ids; the score is always
// derived from the set sizes and never stored as independent truth.
package votes

type Direction int

const (
	Up Direction = iota
	Down
)

// ParseDirection maps the wire value of voteType to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "upvote":
		return Up, true
	case "downvote":
		return Down, true
	}
	return 0, false
}

// Value is the vote row encoding: +1 for up, -1 for down.
func (d Direction) Value() int {
	if d == Down {
		return -1
	}
	return 1
}

type Ledger struct {
	Upvoters   map[uint]struct{}
	Downvoters map[uint]struct{}
}

func NewLedger() Ledger {
	return Ledger{
		Upvoters:   make(map[uint]struct{}),
		Downvoters: make(map[uint]struct{}),
	}
}

// Toggle applies one vote action:
//   - voting the direction already held removes the vote (un-vote)
//   - otherwise the voter joins the chosen set and leaves the opposite one
//
// A voter is never in both sets afterwards.
func (l Ledger) Toggle(voter uint, dir Direction) {
	mine, other := l.Upvoters, l.Downvoters
	if dir == Down {
		mine, other = l.Downvoters, l.Upvoters
	}

	if _, ok := mine[voter]; ok {
		delete(mine, voter)
		return
	}
	mine[voter] = struct{}{}
	delete(other, voter)
}

// Score is |upvoters| - |downvoters|, recomputed on every call.
func (l Ledger) Score() int {
	return len(l.Upvoters) - len(l.Downvoters)
}
