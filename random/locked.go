package random

import "sync"

type locked struct {
	mu     sync.Mutex
	source Source
}

func (l *locked) Number(min, max uint64) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.source.Number(min, max)
}

// Locked returns a Source that serialises calls to source, for sharing one
// engine between goroutines.
func Locked(source Source) Source {
	if l, ok := source.(*locked); ok {
		return l
	}
	return &locked{source: source}
}
