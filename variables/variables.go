package variables

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/cxcalc"
	"github.com/npillmayer/cxcalc/grammar"
)

// ErrInvalidName flags a variable name which is not a run of letters.
var ErrInvalidName = errors.New("variable name must consist of letters only")

// ErrReservedName flags a variable name which is used by the calculator itself.
var ErrReservedName = errors.New("variable name is reserved")

// Entry is a variable in a store.
type Entry struct {
	Name  string
	ID    int
	Value complex64
}

// Store is a mapping of names to complex values.
// The zero value is not usable, use NewStore.
type Store struct {
	entries map[string]Entry
	lastID  int // last ID handed out
	nameSeq int // counter for generated names
}

// NewStore creates an empty variable store.
func NewStore() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// Save stores a value under a generated name and returns the name.
func (s *Store) Save(v complex64) string {
	var name string
	for {
		s.nameSeq++
		name = letters(s.nameSeq)
		if _, exists := s.entries[name]; !exists && !cxcalc.IsReserved(name) {
			break
		}
	}
	s.put(name, v)
	return name
}

// Set stores a value under a given name. If a variable with this name already
// exists, it is replaced and receives a new ID.
func (s *Store) Set(name string, v complex64) error {
	if err := CheckName(name); err != nil {
		return err
	}
	s.put(name, v)
	return nil
}

func (s *Store) put(name string, v complex64) {
	s.lastID++
	s.entries[name] = Entry{Name: name, ID: s.lastID, Value: v}
	tracer().P("var", name).Debugf("#%d = %v", s.lastID, v)
}

// Lookup returns the value of a variable.
func (s *Store) Lookup(name string) (complex64, bool) {
	if s == nil {
		return 0, false
	}
	e, ok := s.entries[name]
	return e.Value, ok
}

// Delete removes variables from the store. It returns the number of
// variables actually removed.
func (s *Store) Delete(names ...string) int {
	n := 0
	for _, name := range names {
		if _, ok := s.entries[name]; ok {
			delete(s.entries, name)
			n++
		}
	}
	return n
}

// Clear removes all variables. Generated names will start over with 'a',
// while IDs keep increasing.
func (s *Store) Clear() {
	s.entries = make(map[string]Entry)
	s.nameSeq = 0
}

// Len returns the number of variables in the store.
func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns all variables, most recently stored first.
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID > entries[j].ID
	})
	return entries
}

// CheckName returns an error if name cannot be used as a variable name.
func CheckName(name string) error {
	if cxcalc.IsReserved(name) {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	if !grammar.IsName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// letters returns the n-th name in the sequence a, …, z, aa, ab, …
// n starts at 1.
func letters(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('a' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}
