package transform

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory builds a Transformer.
type Factory func() Transformer

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a transformation available by name. Built-ins call it
// from init(); registering a name twice replaces the earlier factory.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = f
}

// New returns the transformation registered under name.
func New(name string) (Transformer, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown transformation %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return f(), nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List describes every registered transformation, sorted by name.
func List() []Info {
	names := Names()
	infos := make([]Info, 0, len(names))
	for _, name := range names {
		t, err := New(name)
		if err != nil {
			continue
		}
		infos = append(infos, Info{Name: name, Description: t.Description()})
	}
	return infos
}
