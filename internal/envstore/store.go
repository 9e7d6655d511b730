// SPDX-License-Identifier: MPL-2.0

package envstore

import (
	"maps"
	"sort"
	"strings"
)

type (
	// Var is a stored variable value together with its provenance.
	Var struct {
		Value  string
		Source Source
	}

	// Store is a provenance-tagged environment table. The zero value is not
	// usable; create stores with New.
	Store struct {
		vars map[string]Var
	}
)

// New creates an empty store.
func New() *Store {
	return &Store{vars: make(map[string]Var)}
}

// Upsert writes a variable when the new source outranks or ties the source of
// the current value. It reports whether the write took effect; a tie with an
// identical value is a no-op. Rejected writes are silent — provenance is
// never ambiguous, so there is no error path.
func (s *Store) Upsert(key, value string, source Source) bool {
	existing, ok := s.vars[key]
	if ok {
		if source.Priority() < existing.Source.Priority() {
			return false
		}
		if existing.Source == source && existing.Value == value {
			return false
		}
	}
	s.vars[key] = Var{Value: value, Source: source}
	return true
}

// Merge replays every entry of other into s via Upsert, using other's stored
// source and value. Merge is key-independent, so per-key order is immaterial.
func (s *Store) Merge(other *Store) {
	if other == nil {
		return
	}
	for key, v := range other.vars {
		s.Upsert(key, v.Value, v.Source)
	}
}

// Apply upserts every entry of vars with the given source.
func (s *Store) Apply(vars map[string]string, source Source) {
	for key, value := range vars {
		s.Upsert(key, value, source)
	}
}

// Load parses a flat KEY=VALUE per-line blob, as produced by the shell's
// environment-printing builtin, and upserts each pair with the given source.
// Blank lines and lines without '=' are skipped without error.
func (s *Store) Load(text string, source Source) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(strings.TrimSpace(line), "\r")
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found || key == "" {
			continue
		}
		s.Upsert(key, value, source)
	}
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	clone := &Store{vars: make(map[string]Var, len(s.vars))}
	maps.Copy(clone.vars, s.vars)
	return clone
}

// Lookup returns the variable for key and whether it exists.
func (s *Store) Lookup(key string) (Var, bool) {
	v, ok := s.vars[key]
	return v, ok
}

// Len returns the number of stored variables.
func (s *Store) Len() int { return len(s.vars) }

// Keys returns the variable names in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.vars))
	for key := range s.vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Environ renders the store as sorted KEY=VALUE strings suitable for
// exec.Cmd.Env.
func (s *Store) Environ() []string {
	entries := make([]string, 0, len(s.vars))
	for _, key := range s.Keys() {
		entries = append(entries, key+"="+s.vars[key].Value)
	}
	return entries
}

// Dump serializes the store as KEY=VALUE lines. Load(Dump(), source)
// round-trips the values.
func (s *Store) Dump() string {
	return strings.Join(s.Environ(), "\n")
}
