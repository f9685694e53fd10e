package server

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// PostEventsSocket streams post store events to a dashboard.
// @Summary Post event stream
// @Description Websocket upgrade. Each text frame is a JSON post event; a
// @Description {"type":"resync"} frame means events were dropped and the
// @Description listing should be fetched again.
// @Tags events
// @Success 101
// @Failure 426 {object} models.ErrorResponse
// @Router /ws/posts [get]
func (s *Server) PostEventsSocket() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client, err := s.hub.Register(conn)
		if err != nil {
			log.Printf("post events socket rejected: %v", err)
			if werr := conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"`+err.Error()+`"}`)); werr != nil {
				log.Printf("websocket write error: %v", werr)
			}
			if cerr := conn.Close(); cerr != nil {
				log.Printf("websocket close error: %v", cerr)
			}
			return
		}

		go client.WritePump()
		client.ReadPump()
	})
}
