package module

import "sync"

// registry maps module names to the ports each module exports
// web.Mount fills it while mounting so later lookups see every module
type registry struct {
	mu    sync.RWMutex
	ports map[string]any
}

func (r *registry) put(name string, ports any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ports == nil {
		r.ports = make(map[string]any)
	}
	r.ports[name] = ports
}

func (r *registry) get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.ports[name]
	return v, ok
}

func (r *registry) clear() {
	r.mu.Lock()
	r.ports = nil
	r.mu.Unlock()
}

var global registry

// Register stores the ports of module name, a second call replaces the first
func Register(name string, ports any) { global.put(name, ports) }

// PortsAs looks up name and asserts its ports to T
// ok is false when nothing is registered or the ports are not a T
func PortsAs[T any](name string) (T, bool) {
	return lookup[T](&global, name)
}

func lookup[T any](r *registry, name string) (T, bool) {
	v, ok := r.get(name)
	out, isT := v.(T)
	return out, ok && isT
}

// Reset empties the registry between tests
func Reset() { global.clear() }
