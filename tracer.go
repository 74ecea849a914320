package coinmatch

import (
	"fmt"
	"strings"
	"sync"

	"github.com/DE-labtory/iLogger"
)

type Tracer interface {
	Log(keyvals ...string)
	Trace()
}

// MemCacheTracer buffers traces in memory until Trace flushes them.
type MemCacheTracer struct {
	lock      sync.RWMutex
	traceList []string
}

func NewMemCacheTracer() *MemCacheTracer {
	return &MemCacheTracer{
		lock:      sync.RWMutex{},
		traceList: make([]string, 0),
	}
}

func (t *MemCacheTracer) Log(keyvals ...string) {
	if len(keyvals) == 0 {
		return
	}
	if len(keyvals)%2 == 1 {
		keyvals = append(keyvals, "")
	}

	kvs := make([]string, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		kvs = append(kvs, fmt.Sprintf("%s=%s", keyvals[i], keyvals[i+1]))
	}

	t.lock.Lock()
	defer t.lock.Unlock()
	t.traceList = append(t.traceList, strings.Join(kvs, " "))
}

// Traces returns a copy of the buffered lines.
func (t *MemCacheTracer) Traces() []string {
	t.lock.RLock()
	defer t.lock.RUnlock()

	traces := make([]string, len(t.traceList))
	copy(traces, t.traceList)
	return traces
}

// Trace writes every buffered line through iLogger and empties the buffer.
func (t *MemCacheTracer) Trace() {
	t.lock.Lock()
	defer t.lock.Unlock()

	for _, trace := range t.traceList {
		iLogger.Info(nil, trace)
	}
	t.traceList = t.traceList[:0]
}
