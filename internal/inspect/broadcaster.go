// internal/inspect/broadcaster.go
package inspect

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"coin-tower-defense/internal/app"

	"github.com/gorilla/websocket"
)

// Broadcaster хранит последний снимок игры и раздает его подписчикам по websocket.
// Publish зовется из игрового цикла, Run крутится в своей горутине.
type Broadcaster struct {
	mu         sync.RWMutex
	latest     app.Snapshot
	version    uint64
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	interval   time.Duration
	writeMu    map[*websocket.Conn]*sync.Mutex // по замку на соединение
}

func NewBroadcaster(interval time.Duration) *Broadcaster {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return &Broadcaster{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		interval:   interval,
		writeMu:    make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Publish запоминает снимок. Снимок не разделяет память с игрой, копия не нужна.
func (b *Broadcaster) Publish(snap app.Snapshot) {
	b.mu.Lock()
	b.latest = snap
	b.version++
	b.mu.Unlock()
}

// Latest — последний снимок; false, если публикаций еще не было.
func (b *Broadcaster) Latest() (app.Snapshot, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.latest, b.version > 0
}

func (b *Broadcaster) encodeLatest() ([]byte, uint64, error) {
	b.mu.RLock()
	snap, version := b.latest, b.version
	b.mu.RUnlock()
	if version == 0 {
		return nil, 0, nil
	}
	data, err := json.Marshal(snap)
	return data, version, err
}

// Run обслуживает подписчиков до отмены контекста.
func (b *Broadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(b.interval)
	defer func() {
		ticker.Stop()
		close(b.done)
		b.mu.Lock()
		for conn := range b.clients {
			conn.Close()
		}
		b.clients = map[*websocket.Conn]bool{}
		b.writeMu = map[*websocket.Conn]*sync.Mutex{}
		b.mu.Unlock()
	}()

	var sent uint64
	for {
		select {
		case <-ctx.Done():
			return

		case conn := <-b.register:
			b.mu.Lock()
			b.clients[conn] = true
			b.writeMu[conn] = &sync.Mutex{}
			b.mu.Unlock()

			// Новичку сразу отдаем последний снимок
			data, _, err := b.encodeLatest()
			if err != nil {
				log.Println("inspect: marshal error:", err)
				continue
			}
			if data != nil && !b.write(conn, data) {
				b.drop(conn)
			}

		case conn := <-b.unregister:
			b.drop(conn)

		case <-ticker.C:
			data, version, err := b.encodeLatest()
			if err != nil {
				log.Println("inspect: marshal error:", err)
				continue
			}
			if data == nil || version == sent {
				continue
			}
			sent = version

			var failed []*websocket.Conn
			b.mu.RLock()
			for conn := range b.clients {
				if !b.write(conn, data) {
					failed = append(failed, conn)
				}
			}
			b.mu.RUnlock()
			for _, conn := range failed {
				b.drop(conn)
			}
		}
	}
}

func (b *Broadcaster) write(conn *websocket.Conn, data []byte) bool {
	mu, ok := b.writeMu[conn]
	if !ok {
		return false
	}
	mu.Lock()
	defer mu.Unlock()
	conn.SetWriteDeadline(time.Now().Add(time.Second))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Println("inspect: broadcast error:", err)
		return false
	}
	return true
}

func (b *Broadcaster) drop(conn *websocket.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.clients[conn]; ok {
		delete(b.clients, conn)
		delete(b.writeMu, conn)
		conn.Close()
	}
}

// Register добавляет соединение; false — рассылка уже остановлена.
func (b *Broadcaster) Register(conn *websocket.Conn) bool {
	select {
	case b.register <- conn:
		return true
	case <-b.done:
		return false
	}
}

func (b *Broadcaster) Unregister(conn *websocket.Conn) {
	select {
	case b.unregister <- conn:
	case <-b.done:
	}
}

// ClientCount — число подключенных наблюдателей
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}
