package clues

import "iter"

type node struct {
	clue        string
	left, right *node
}

// Set is an unbalanced binary search tree of clue texts. Equal texts are
// stored once. The zero value is an empty set.
type Set struct {
	root *node
	size int
}

// Contains reports whether clue has been inserted.
func (s *Set) Contains(clue string) bool {
	n := s.root
	for n != nil {
		switch {
		case clue < n.clue:
			n = n.left
		case clue > n.clue:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Insert adds clue as a new leaf. It returns false, leaving the tree
// unchanged, when the text is already present.
func (s *Set) Insert(clue string) bool {
	link := &s.root
	for *link != nil {
		switch n := *link; {
		case clue < n.clue:
			link = &n.left
		case clue > n.clue:
			link = &n.right
		default:
			return false
		}
	}
	*link = &node{clue: clue}
	s.size++
	return true
}

// All yields the clues in ascending order. The sequence can be ranged over
// any number of times.
func (s *Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		inOrder(s.root, yield)
	}
}

func inOrder(n *node, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) && yield(n.clue) && inOrder(n.right, yield)
}

// Len returns the number of distinct clues.
func (s *Set) Len() int { return s.size }

// Height returns the number of nodes on the longest root-to-leaf path.
func (s *Set) Height() int { return height(s.root) }

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Reset drops every node.
func (s *Set) Reset() {
	s.root = nil
	s.size = 0
}
