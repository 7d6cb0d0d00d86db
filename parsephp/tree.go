package parsephp

// Entry is one key/value pair of a Tree.
type Entry struct {
	Key   Key
	Value Value
}

// Pair is a shorthand for an Entry with a string key.
func Pair(key string, v Value) Entry {
	return Entry{Key: StringKey(key), Value: v}
}

// Tree is an ordered mapping from Key to Value. Insertion order is
// significant and kept through every operation. The zero Tree is empty and
// ready to use.
type Tree struct {
	entries []Entry
	index   map[Key]int
}

// NewTree returns a tree holding entries in order. Later duplicates replace
// earlier ones in place.
func NewTree(entries ...Entry) *Tree {
	t := &Tree{}
	for _, e := range entries {
		t.Set(e.Key, e.Value)
	}
	return t
}

// List returns a positional tree holding values under keys 0..n-1.
func List(values ...Value) *Tree {
	t := &Tree{}
	for _, v := range values {
		t.Push(v)
	}
	return t
}

// Len returns the number of entries.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Get returns the value stored under k.
func (t *Tree) Get(k Key) (Value, bool) {
	if t == nil || t.index == nil {
		return Value{}, false
	}
	i, ok := t.index[k]
	if !ok {
		return Value{}, false
	}
	return t.entries[i].Value, true
}

// Has reports whether k is present.
func (t *Tree) Has(k Key) bool {
	_, ok := t.Get(k)
	return ok
}

// Set stores v under k, keeping the position of an existing entry or
// appending a new one at the end.
func (t *Tree) Set(k Key, v Value) {
	if t.index == nil {
		t.index = make(map[Key]int)
	}
	if i, ok := t.index[k]; ok {
		t.entries[i].Value = v
		return
	}
	t.index[k] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: k, Value: v})
}

// Push appends v under the next free integer index and returns that key.
func (t *Tree) Push(v Value) Key {
	k := IntKey(t.NextIndex())
	t.Set(k, v)
	return k
}

// NextIndex returns the key Push would use: one past the largest
// non-negative integer key, or 0.
func (t *Tree) NextIndex() int {
	next := 0
	if t == nil {
		return next
	}
	for _, e := range t.entries {
		if e.Key.isInt && e.Key.num >= next {
			next = e.Key.num + 1
		}
	}
	return next
}

// Delete removes k and reports whether it was present.
func (t *Tree) Delete(k Key) bool {
	if t == nil || t.index == nil {
		return false
	}
	i, ok := t.index[k]
	if !ok {
		return false
	}
	t.entries = append(t.entries[:i], t.entries[i+1:]...)
	t.rebuildIndex()
	return true
}

// Rename changes the key of an entry without moving it. If to already exists
// elsewhere, that entry is dropped.
func (t *Tree) Rename(from, to Key) {
	if from == to || t.index == nil {
		return
	}
	i, ok := t.index[from]
	if !ok {
		return
	}
	if j, exists := t.index[to]; exists {
		t.entries = append(t.entries[:j], t.entries[j+1:]...)
		if j < i {
			i--
		}
	}
	t.entries[i].Key = to
	t.rebuildIndex()
}

// At returns the i-th entry in order.
func (t *Tree) At(i int) Entry {
	return t.entries[i]
}

// Entries returns a copy of the entry list. Nested trees are shared.
func (t *Tree) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Keys returns the keys in order.
func (t *Tree) Keys() []Key {
	if t == nil {
		return nil
	}
	out := make([]Key, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Key
	}
	return out
}

// IsList reports whether the keys are exactly 0..n-1 in order, i.e. the tree
// is a positional array. An empty tree is a list.
func (t *Tree) IsList() bool {
	if t == nil {
		return true
	}
	for i, e := range t.entries {
		if !e.Key.isInt || e.Key.num != i {
			return false
		}
	}
	return true
}

// Reindex renumbers all entries 0..n-1 keeping their order.
func (t *Tree) Reindex() {
	for i := range t.entries {
		t.entries[i].Key = IntKey(i)
	}
	t.rebuildIndex()
}

// Replace swaps the content of t for entries. Pointers to t stay valid.
func (t *Tree) Replace(entries []Entry) {
	t.entries = nil
	t.index = nil
	for _, e := range entries {
		t.Set(e.Key, e.Value)
	}
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	c := &Tree{}
	if t == nil {
		return c
	}
	c.entries = make([]Entry, len(t.entries))
	for i, e := range t.entries {
		c.entries[i] = Entry{Key: e.Key, Value: e.Value.Clone()}
	}
	c.rebuildIndex()
	return c
}

// Equal reports whether t and o hold the same entries in the same order.
func (t *Tree) Equal(o *Tree) bool {
	if t.Len() != o.Len() {
		return false
	}
	for i := 0; i < t.Len(); i++ {
		a, b := t.entries[i], o.entries[i]
		if a.Key != b.Key || !a.Value.Equal(b.Value) {
			return false
		}
	}
	return true
}

// String serializes t with DefaultOptions and unencoded brackets.
func (t *Tree) String() string {
	return UnencodeBrackets(Serialize(t, DefaultOptions))
}

func (t *Tree) rebuildIndex() {
	t.index = make(map[Key]int, len(t.entries))
	for i, e := range t.entries {
		t.index[e.Key] = i
	}
}
