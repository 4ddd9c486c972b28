// internal/inspect/server.go
package inspect

import (
	"context"
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"coin-tower-defense/internal/defs"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// Инспектор слушает только localhost, проверять Origin незачем
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SetupRouter собирает read-only API наблюдения за партией.
func SetupRouter(broadcaster *Broadcaster) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "watchers": broadcaster.ClientCount()})
	})
	r.GET("/state", stateHandler(broadcaster))
	r.GET("/defs", defsHandler)
	r.GET("/ws", HandleWebsocket(broadcaster))
	r.GET("/debug/pprof/*profile", gin.WrapH(http.DefaultServeMux))

	return r
}

func stateHandler(broadcaster *Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, ok := broadcaster.Latest()
		if !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no game running yet"})
			return
		}
		c.JSON(http.StatusOK, snap)
	}
}

func defsHandler(c *gin.Context) {
	towers := make([]defs.TowerDefinition, 0, len(defs.TowerOrder))
	for _, id := range defs.TowerOrder {
		if def, ok := defs.Tower(id); ok {
			towers = append(towers, def)
		}
	}
	enemies := make([]defs.EnemyDefinition, 0, len(defs.EnemyOrder))
	for _, id := range defs.EnemyOrder {
		if def, ok := defs.Enemy(id); ok {
			enemies = append(enemies, def)
		}
	}
	c.JSON(http.StatusOK, gin.H{"towers": towers, "enemies": enemies})
}

// HandleWebsocket подписывает клиента на поток снимков. Входящие сообщения
// игнорируются: читаем только чтобы заметить закрытие.
func HandleWebsocket(broadcaster *Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("inspect: ws upgrade error:", err)
			return
		}
		if !broadcaster.Register(conn) {
			conn.Close()
			return
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				broadcaster.Unregister(conn)
				return
			}
		}
	}
}

// Serve поднимает инспектор на addr и гасит его при отмене ctx.
func Serve(ctx context.Context, addr string, broadcaster *Broadcaster) error {
	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:    addr,
		Handler: SetupRouter(broadcaster),
	}
	go broadcaster.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("inspect: listening on http://%s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
