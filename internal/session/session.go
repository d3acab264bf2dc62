// Package session holds the data shared by every scene for the lifetime of
// the application: the top-5 leaderboard and the most recent completion time.
package session

import "slices"

// RecordSize is the number of leaderboard entries.
const RecordSize = 5

// Record holds completion times in seconds, best first.
type Record [RecordSize]int

// DefaultRecord is used when nothing has been persisted yet.
var DefaultRecord = Record{222, 333, 444, 555, 666}

// Data is the shared session context handed to each scene.
type Data struct {
	Record   Record
	Previous int
}

// Default returns session data seeded with the default leaderboard.
func Default() *Data {
	return &Data{Record: DefaultRecord, Previous: DefaultRecord[RecordSize-1]}
}

// Complete records a finished run. Previous is always updated; the record
// only changes when seconds beats the current worst entry, in which case
// Complete reports true and the caller should persist the new record.
func (d *Data) Complete(seconds int) bool {
	d.Previous = seconds
	if seconds >= d.Record[RecordSize-1] {
		return false
	}
	d.Record[RecordSize-1] = seconds
	slices.Sort(d.Record[:])
	return true
}

// Rank returns the index of the first entry equal to Previous, or -1.
func (d *Data) Rank() int {
	return slices.Index(d.Record[:], d.Previous)
}

// Valid reports whether r is non-negative and sorted ascending.
func Valid(r Record) bool {
	for i, v := range r {
		if v < 0 {
			return false
		}
		if i > 0 && r[i-1] > v {
			return false
		}
	}
	return true
}
