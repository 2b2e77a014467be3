package suspicion

import "iter"

// TableSize is the fixed bucket count. The table never grows, so bucket
// placement and dump order are stable for a given set of clues.
const TableSize = 23

// Hash sums the bytes of clue modulo TableSize.
func Hash(clue string) int {
	sum := 0
	for i := 0; i < len(clue); i++ {
		sum += int(clue[i])
	}
	return sum % TableSize
}

// Entry is one clue and the suspect it implicates.
type Entry struct {
	Clue    string
	Suspect string
	next    *Entry
}

// Index is a separately chained hash table keyed by clue text. It does not
// check for repeated clues; callers insert each distinct clue once.
type Index struct {
	buckets [TableSize]*Entry
	size    int
}

// New returns an empty index.
func New() *Index {
	return &Index{}
}

// Insert prepends (clue, suspect) to the chain of the clue's bucket.
func (ix *Index) Insert(clue, suspect string) {
	b := Hash(clue)
	ix.buckets[b] = &Entry{Clue: clue, Suspect: suspect, next: ix.buckets[b]}
	ix.size++
}

// entries yields every entry, bucket by bucket, each chain from its head.
func (ix *Index) entries(yield func(*Entry) bool) {
	for _, head := range ix.buckets {
		for e := head; e != nil; e = e.next {
			if !yield(e) {
				return
			}
		}
	}
}

// CountFor returns how many entries name exactly suspect.
func (ix *Index) CountFor(suspect string) int {
	n := 0
	for e := range ix.entries {
		if e.Suspect == suspect {
			n++
		}
	}
	return n
}

// ListFor yields the clues implicating suspect, in table order.
func (ix *Index) ListFor(suspect string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for e := range ix.entries {
			if e.Suspect == suspect && !yield(e.Clue) {
				return
			}
		}
	}
}

// All yields every (clue, suspect) pair in table order.
func (ix *Index) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for e := range ix.entries {
			if !yield(e.Clue, e.Suspect) {
				return
			}
		}
	}
}

// Suspects returns the distinct suspects present, in table order.
func (ix *Index) Suspects() []string {
	var names []string
	seen := make(map[string]struct{})
	for e := range ix.entries {
		if _, ok := seen[e.Suspect]; !ok {
			seen[e.Suspect] = struct{}{}
			names = append(names, e.Suspect)
		}
	}
	return names
}

// Len returns the number of entries.
func (ix *Index) Len() int { return ix.size }

// Clear unlinks every chain and leaves the table empty.
func (ix *Index) Clear() {
	for i, head := range ix.buckets {
		for e := head; e != nil; {
			next := e.next
			e.next = nil
			e = next
		}
		ix.buckets[i] = nil
	}
	ix.size = 0
}
