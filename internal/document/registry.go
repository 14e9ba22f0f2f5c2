package document

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

var (
	enginesMu sync.RWMutex
	engines   = make(map[string]Engine)
)

// Register makes an engine available by name. If Register is called twice
// with the same name or if engine is nil, it panics.
func Register(name string, engine Engine) {
	enginesMu.Lock()
	defer enginesMu.Unlock()
	if engine == nil {
		panic("document: Register engine is nil")
	}
	if _, dup := engines[name]; dup {
		panic("document: Register called twice for engine " + name)
	}
	engines[name] = engine
}

// Engines returns a sorted list of the names of the registered engines.
func Engines() []string {
	enginesMu.RLock()
	defer enginesMu.RUnlock()
	list := make([]string, 0, len(engines))
	for name := range engines {
		list = append(list, name)
	}
	slices.Sort(list)
	return list
}

func unregisterAllEngines() {
	enginesMu.Lock()
	defer enginesMu.Unlock()
	engines = make(map[string]Engine)
}

// NamedLoader returns an [EngineLoader] resolving name in the registry at
// load time, so engines registered after construction are still found.
func NamedLoader(name string) EngineLoader {
	return namedLoader(name)
}

type namedLoader string

func (n namedLoader) Load(ctx context.Context) (Engine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	enginesMu.RLock()
	engine, ok := engines[string(n)]
	enginesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: unknown engine %q (forgotten import?)", ErrEngineUnavailable, string(n))
	}
	return engine, nil
}
