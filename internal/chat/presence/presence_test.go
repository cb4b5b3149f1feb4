package presence

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"socialfeed/internal/dbmongo"
)

type fakeStream struct {
	mu       sync.Mutex
	received []*dbmongo.Message
}

func (f *fakeStream) Send(msg *dbmongo.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.received = append(f.received, msg)
	return nil
}

func TestRegistry_RegisterLookup(t *testing.T) {
	registry := NewRegistry()
	stream := &fakeStream{}

	_, ok := registry.Lookup("u1")
	assert.False(t, ok)

	registry.Register("u1", stream)

	got, ok := registry.Lookup("u1")
	assert.True(t, ok)
	assert.Same(t, stream, got.(*fakeStream))
}

func TestRegistry_RegisterReplacesExisting(t *testing.T) {
	registry := NewRegistry()
	first := &fakeStream{}
	second := &fakeStream{}

	registry.Register("u1", first)
	registry.Register("u1", second)

	got, ok := registry.Lookup("u1")
	assert.True(t, ok)
	assert.Same(t, second, got.(*fakeStream))
}

func TestRegistry_UnregisterOnlyRemovesOwnStream(t *testing.T) {
	registry := NewRegistry()
	old := &fakeStream{}
	current := &fakeStream{}

	registry.Register("u1", old)
	registry.Register("u1", current)

	// A late unregister from the replaced subscription must not clobber
	// the newer registration.
	registry.Unregister("u1", old)

	got, ok := registry.Lookup("u1")
	assert.True(t, ok)
	assert.Same(t, current, got.(*fakeStream))

	registry.Unregister("u1", current)
	_, ok = registry.Lookup("u1")
	assert.False(t, ok)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stream := &fakeStream{}
			registry.Register("u1", stream)
			registry.Lookup("u1")
			registry.Unregister("u1", stream)
		}()
	}
	wg.Wait()
}
