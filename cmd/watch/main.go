// Package main tails the live post event stream of a running API server.
package main

import (
	"flag"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"socialmanager/internal/notifications"

	"github.com/gorilla/websocket"
)

func main() {
	host := flag.String("host", "localhost:8080", "API server host")
	secure := flag.Bool("tls", false, "Use wss")
	flag.Parse()

	scheme := "ws"
	if *secure {
		scheme = "wss"
	}
	u := url.URL{Scheme: scheme, Host: *host, Path: "/api/ws/posts"}

	c, resp, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("dial %s: %v", u.String(), err)
	}
	if resp != nil && resp.Body != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	defer func() { _ = c.Close() }()
	log.Printf("Watching %s", u.String())

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var event notifications.PostEvent
			if err := c.ReadJSON(&event); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Printf("read: %v", err)
				}
				return
			}
			if event.Type == "resync" {
				log.Println("events were dropped; re-fetch /api/posts")
				continue
			}
			log.Printf("%s post=%d status=%s platforms=%v", event.Type, event.PostID, event.Status, event.Platforms)
		}
	}()

	select {
	case <-done:
	case <-interrupt:
		_ = c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}
}
