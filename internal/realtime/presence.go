package realtime

import "sync"

// PresenceRegistry 进程级在线表：用户ID -> 活跃连接ID集合
// 集合为空时条目直接删除，条目不存在即离线；
// 0→1 / 1→0 的状态迁移判定和集合修改在同一把锁内完成，
// 保证同一用户并发连接/断开时上下线事件恰好各触发一次
type PresenceRegistry struct {
	mu          sync.Mutex
	connections map[int64]map[string]struct{}
}

// NewPresenceRegistry 创建在线表
func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{
		connections: make(map[int64]map[string]struct{}),
	}
}

// Register 登记一条连接，返回用户是否由离线变为在线
// 同一连接重复登记是幂等的
func (p *PresenceRegistry) Register(userID int64, connID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	set, ok := p.connections[userID]
	if !ok {
		set = make(map[string]struct{})
		p.connections[userID] = set
	}
	set[connID] = struct{}{}
	return !ok
}

// Unregister 注销一条连接，返回用户是否由在线变为离线
func (p *PresenceRegistry) Unregister(userID int64, connID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	set, ok := p.connections[userID]
	if !ok {
		return false
	}
	if _, exists := set[connID]; !exists {
		return false
	}
	delete(set, connID)
	if len(set) == 0 {
		delete(p.connections, userID)
		return true
	}
	return false
}

// IsOnline 判断用户是否在线
func (p *PresenceRegistry) IsOnline(userID int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.connections[userID]) > 0
}

// ConnectionsFor 返回用户当前的连接ID快照，可能为空
func (p *PresenceRegistry) ConnectionsFor(userID int64) []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	set := p.connections[userID]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

// OnlineCount 当前在线用户数
func (p *PresenceRegistry) OnlineCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.connections)
}
