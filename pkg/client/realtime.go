package client

import (
	"context"
	"strings"

	"github.com/gorilla/websocket"
)

// Broadcast event names, mirroring the server.
const (
	eventProductUpdated   = "productUpdated"
	eventPechinchaUpdated = "pechinchaUpdated"
	eventPedidoUpdated    = "pedidoUpdated"
	eventReviewUpdated    = "reviewUpdated"
)

type eventFrame struct {
	Event string `json:"event"`
}

// Listen connects to the server's broadcast channel and refreshes the
// matching slice on every event, the same refetch-on-notify loop the SPA
// ran. Blocks until the context is cancelled or the connection drops.
// Events carry no payload, so a refresh failure is not retried; the next
// broadcast triggers another fetch.
func (s *State) Listen(ctx context.Context) error {
	wsURL := strings.Replace(s.client.BaseURL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	for {
		var frame eventFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		switch frame.Event {
		case eventProductUpdated:
			_ = s.Products.Refresh(ctx)
		case eventPechinchaUpdated:
			_ = s.Pechinchas.Refresh(ctx)
		case eventPedidoUpdated:
			_ = s.Pedidos.Refresh(ctx)
		case eventReviewUpdated:
			_ = s.Reviews.Refresh(ctx)
		}
	}
}
