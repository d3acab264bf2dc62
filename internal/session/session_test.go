package session

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestCompleteInsertsFasterTime(t *testing.T) {
	d := Default()
	if !d.Complete(100) {
		t.Fatal("100s should enter the leaderboard")
	}
	want := Record{100, 222, 333, 444, 555}
	if d.Record != want {
		t.Fatalf("record = %v, want %v", d.Record, want)
	}
	if d.Previous != 100 {
		t.Fatalf("previous = %d, want 100", d.Previous)
	}
	if got := d.Rank(); got != 0 {
		t.Fatalf("rank = %d, want 0", got)
	}
}

func TestCompleteSlowerTimeKeepsRecord(t *testing.T) {
	d := Default()
	if d.Complete(700) {
		t.Fatal("700s must not enter the leaderboard")
	}
	if d.Record != DefaultRecord {
		t.Fatalf("record changed to %v", d.Record)
	}
	if d.Previous != 700 {
		t.Fatalf("previous = %d, want 700", d.Previous)
	}
	if got := d.Rank(); got != -1 {
		t.Fatalf("rank = %d, want -1", got)
	}
}

func TestCompleteTieWithWorstIsRejected(t *testing.T) {
	d := Default()
	if d.Complete(666) {
		t.Fatal("equal to the worst entry must not count as a record")
	}
	if d.Record != DefaultRecord {
		t.Fatalf("record changed to %v", d.Record)
	}
}

func TestCompleteKeepsRecordSorted(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 9))
	d := Default()
	for i := 0; i < 500; i++ {
		old := d.Record
		tm := r.IntN(900)
		changed := d.Complete(tm)
		if !Valid(d.Record) {
			t.Fatalf("iteration %d: record %v not sorted", i, d.Record)
		}
		if d.Previous != tm {
			t.Fatalf("iteration %d: previous = %d, want %d", i, d.Previous, tm)
		}
		if changed != (tm < old[RecordSize-1]) {
			t.Fatalf("iteration %d: changed=%v for %d against %v", i, changed, tm, old)
		}
		if !changed {
			if d.Record != old {
				t.Fatalf("iteration %d: record mutated without qualifying", i)
			}
			continue
		}
		want := old
		want[RecordSize-1] = tm
		slices.Sort(want[:])
		if d.Record != want {
			t.Fatalf("iteration %d: record = %v, want %v", i, d.Record, want)
		}
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		name string
		r    Record
		want bool
	}{
		{"default", DefaultRecord, true},
		{"ties", Record{5, 5, 5, 5, 5}, true},
		{"unsorted", Record{1, 3, 2, 4, 5}, false},
		{"negative", Record{-1, 0, 1, 2, 3}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Valid(tc.r); got != tc.want {
				t.Fatalf("Valid(%v) = %v, want %v", tc.r, got, tc.want)
			}
		})
	}
}
