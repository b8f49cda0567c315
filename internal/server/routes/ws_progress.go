package routes

import (
	"net/http"
	"time"

	"conceptgraph/internal/server/middleware"
	"conceptgraph/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	progressWSWriteWait = 10 * time.Second
	progressWSPongWait  = 60 * time.Second
	progressWSPingEvery = (progressWSPongWait * 9) / 10
)

var progressWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// ProgressWSHandler streams build progress events for a session over a
// websocket. Subscribers joining after the build finished immediately
// receive the terminal event.
func ProgressWSHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	sessionID := c.Param("id")

	conn, err := progressWSUpgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	events, cancel := app.Hub.Subscribe(sessionID)
	defer cancel()

	done := make(chan struct{})

	// Reader goroutine: drains client frames and keeps the pong deadline
	// fresh; its exit signals disconnect.
	go func() {
		defer close(done)
		if err := conn.SetReadDeadline(time.Now().Add(progressWSPongWait)); err != nil {
			return
		}
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(progressWSPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(progressWSPingEvery)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return nil
		case evt := <-events:
			if err := conn.SetWriteDeadline(time.Now().Add(progressWSWriteWait)); err != nil {
				return nil
			}
			if err := conn.WriteJSON(evt); err != nil {
				logger.Debug("Progress websocket closed", "session", sessionID, "err", err)
				return nil
			}
		case <-ticker.C:
			if err := conn.SetWriteDeadline(time.Now().Add(progressWSWriteWait)); err != nil {
				return nil
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		}
	}
}
