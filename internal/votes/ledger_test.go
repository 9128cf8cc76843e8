package votes

import (
	"testing"
)

func TestToggleAddsVote(t *testing.T) {
	l := NewLedger()
	l.Toggle(1, Up)

	if _, ok := l.Upvoters[1]; !ok {
		t.Fatal("voter should be in upvoters")
	}
	if _, ok := l.Downvoters[1]; ok {
		t.Fatal("voter must not be in downvoters")
	}
	if l.Score() != 1 {
		t.Fatalf("expected score 1, got %d", l.Score())
	}
}

func TestToggleSameDirectionCancels(t *testing.T) {
	l := NewLedger()
	l.Toggle(1, Up)
	l.Toggle(1, Up)

	if _, ok := l.Upvoters[1]; ok {
		t.Fatal("second upvote should remove the vote")
	}
	if l.Score() != 0 {
		t.Fatalf("expected score 0, got %d", l.Score())
	}

	l.Toggle(1, Down)
	l.Toggle(1, Down)
	if len(l.Downvoters) != 0 || l.Score() != 0 {
		t.Fatalf("double downvote should cancel, score %d", l.Score())
	}
}

func TestToggleSwitchesDirection(t *testing.T) {
	l := NewLedger()
	l.Toggle(1, Up)
	l.Toggle(1, Down)

	if _, ok := l.Upvoters[1]; ok {
		t.Fatal("upvote should be removed on switch")
	}
	if _, ok := l.Downvoters[1]; !ok {
		t.Fatal("voter should be in downvoters after switch")
	}
	if l.Score() != -1 {
		t.Fatalf("expected score -1, got %d", l.Score())
	}
}

func TestVoterNeverInBothSets(t *testing.T) {
	l := NewLedger()
	seq := []Direction{Up, Down, Down, Up, Up, Down, Up}
	for _, dir := range seq {
		l.Toggle(7, dir)
		_, up := l.Upvoters[7]
		_, down := l.Downvoters[7]
		if up && down {
			t.Fatal("voter present in both sets")
		}
		if l.Score() != len(l.Upvoters)-len(l.Downvoters) {
			t.Fatalf("score %d out of sync with sets", l.Score())
		}
	}
}

func TestScoreDerivedFromManyVoters(t *testing.T) {
	l := NewLedger()
	for v := uint(1); v <= 5; v++ {
		l.Toggle(v, Up)
	}
	for v := uint(6); v <= 7; v++ {
		l.Toggle(v, Down)
	}
	if l.Score() != 3 {
		t.Fatalf("expected score 3, got %d", l.Score())
	}
}

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection("upvote"); !ok || d != Up {
		t.Fatalf("upvote parsed as %v %v", d, ok)
	}
	if d, ok := ParseDirection("downvote"); !ok || d != Down {
		t.Fatalf("downvote parsed as %v %v", d, ok)
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Fatal("unknown direction should not parse")
	}
}

func TestDirectionValue(t *testing.T) {
	if Up.Value() != 1 || Down.Value() != -1 {
		t.Fatalf("unexpected values: up=%d down=%d", Up.Value(), Down.Value())
	}
}
