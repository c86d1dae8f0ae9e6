package dialect

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// ErrDialectRequired is returned when a dialect is required but not provided.
var ErrDialectRequired = errors.New("dialect is required")

// Get returns a dialect by name or alias.
func Get(name string) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	return d, ok
}

// Register registers a dialect in the global registry under its canonical
// name plus any aliases. Called by dialect packages in their init() functions.
func Register(d *Dialect, aliases ...string) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.Name)] = d
	for _, alias := range aliases {
		dialects[strings.ToLower(alias)] = d
	}
}

// List returns all registered canonical dialect names (sorted, no aliases).
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	seen := make(map[string]bool, len(dialects))
	names := make([]string, 0, len(dialects))
	for _, d := range dialects {
		if !seen[d.Name] {
			seen[d.Name] = true
			names = append(names, d.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Aliases returns the registered aliases for the named dialect, excluding
// the canonical name itself (sorted).
func Aliases(name string) []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	if !ok {
		return nil
	}
	var aliases []string
	for key, reg := range dialects {
		if reg == d && key != d.Name {
			aliases = append(aliases, key)
		}
	}
	sort.Strings(aliases)
	return aliases
}
