package realtime

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresenceRegistryTransitions(t *testing.T) {
	p := NewPresenceRegistry()

	t.Run("first connection goes online", func(t *testing.T) {
		assert.False(t, p.IsOnline(1))
		assert.True(t, p.Register(1, "c1"))
		assert.True(t, p.IsOnline(1))
	})

	t.Run("second connection is not a transition", func(t *testing.T) {
		assert.False(t, p.Register(1, "c2"))
		assert.True(t, p.IsOnline(1))
	})

	t.Run("duplicate register is idempotent", func(t *testing.T) {
		assert.False(t, p.Register(1, "c1"))
		assert.Len(t, p.ConnectionsFor(1), 2)
	})

	t.Run("offline only after last connection", func(t *testing.T) {
		assert.False(t, p.Unregister(1, "c1"))
		assert.True(t, p.IsOnline(1))
		assert.True(t, p.Unregister(1, "c2"))
		assert.False(t, p.IsOnline(1))
	})

	t.Run("unregister unknown connection", func(t *testing.T) {
		assert.False(t, p.Unregister(1, "c1"))
		assert.False(t, p.Unregister(99, "nope"))
	})
}

func TestPresenceRegistryOnlineCount(t *testing.T) {
	p := NewPresenceRegistry()

	p.Register(1, "a")
	p.Register(1, "b")
	p.Register(2, "c")
	assert.Equal(t, 2, p.OnlineCount())

	p.Unregister(1, "a")
	assert.Equal(t, 2, p.OnlineCount())
	p.Unregister(1, "b")
	assert.Equal(t, 1, p.OnlineCount())
}

// 并发注册/注销同一用户时，0→1 与 1→0 的迁移必须各恰好一次
func TestPresenceRegistryConcurrentTransitions(t *testing.T) {
	p := NewPresenceRegistry()
	const conns = 64

	var wg sync.WaitGroup
	var mu sync.Mutex
	online := 0

	for i := 0; i < conns; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if p.Register(100, fmt.Sprintf("conn-%d", i)) {
				mu.Lock()
				online++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, online)
	assert.True(t, p.IsOnline(100))

	offline := 0
	for i := 0; i < conns; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if p.Unregister(100, fmt.Sprintf("conn-%d", i)) {
				mu.Lock()
				offline++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, offline)
	assert.False(t, p.IsOnline(100))
}
