// Package store implements the per-locale translation store: a prefix
// tree keyed by dotted-path segments mapping to template strings.
//
// Stores are built once by a loader and read-only afterward. Flatten
// walks the tree in insertion order, so loaders that insert in file
// order get deterministic output.
package store

// Store maps key paths (e.g. ["ui","button","save"]) to template strings.
type Store struct {
	root *node
	size int
}

type node struct {
	children map[string]*node
	order    []string
	value    string
	leaf     bool
}

// Entry is one flattened (key path, value) pair.
type Entry struct {
	Path  []string
	Value string
}

// New returns an empty store.
func New() *Store {
	return &Store{root: &node{children: make(map[string]*node)}}
}

// Insert adds a key path with its template string. Inserting an
// existing path overwrites the value. Empty paths are ignored.
func (s *Store) Insert(path []string, value string) {
	if len(path) == 0 {
		return
	}
	n := s.root
	for _, seg := range path {
		child, ok := n.children[seg]
		if !ok {
			child = &node{children: make(map[string]*node)}
			n.children[seg] = child
			n.order = append(n.order, seg)
		}
		n = child
	}
	if !n.leaf {
		s.size++
	}
	n.leaf = true
	n.value = value
}

// Get returns the value stored at the given path.
func (s *Store) Get(path []string) (string, bool) {
	n := s.root
	for _, seg := range path {
		child, ok := n.children[seg]
		if !ok {
			return "", false
		}
		n = child
	}
	if !n.leaf {
		return "", false
	}
	return n.value, true
}

// Len returns the number of keys in the store.
func (s *Store) Len() int { return s.size }

// Flatten returns every (path, value) pair in insertion order.
func (s *Store) Flatten() []Entry {
	out := make([]Entry, 0, s.size)
	flatten(s.root, nil, &out)
	return out
}

func flatten(n *node, prefix []string, out *[]Entry) {
	if n.leaf {
		path := make([]string, len(prefix))
		copy(path, prefix)
		*out = append(*out, Entry{Path: path, Value: n.value})
	}
	for _, seg := range n.order {
		flatten(n.children[seg], append(prefix, seg), out)
	}
}
