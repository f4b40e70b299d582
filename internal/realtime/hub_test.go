package realtime

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargoshop/cargoshop/internal/domain"
)

func startHubServer(t *testing.T, h *Hub) *httptest.Server {
	t.Helper()
	e := echo.New()
	e.GET("/ws", h.Handler())
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func dialHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("client count stuck at %d, want %d", h.ClientCount(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestBroadcastReachesEveryClient(t *testing.T) {
	h := NewHub()
	srv := startHubServer(t, h)

	c1 := dialHub(t, srv)
	c2 := dialHub(t, srv)
	waitForClients(t, h, 2)

	h.Broadcast(domain.EventProductUpdated)

	assert.Equal(t, domain.EventProductUpdated, readEvent(t, c1).Event)
	assert.Equal(t, domain.EventProductUpdated, readEvent(t, c2).Event)
}

func TestBindBusForwardsPublishes(t *testing.T) {
	h := NewHub()
	bus := EventBus.New()
	require.NoError(t, h.BindBus(bus))

	srv := startHubServer(t, h)
	conn := dialHub(t, srv)
	waitForClients(t, h, 1)

	bus.Publish(domain.EventPechinchaUpdated)

	assert.Equal(t, domain.EventPechinchaUpdated, readEvent(t, conn).Event)
}

func TestUnregisterOnDisconnect(t *testing.T) {
	h := NewHub()
	srv := startHubServer(t, h)

	conn := dialHub(t, srv)
	waitForClients(t, h, 1)

	require.NoError(t, conn.Close())
	waitForClients(t, h, 0)
}

func TestCloseDisconnectsClients(t *testing.T) {
	h := NewHub()
	srv := startHubServer(t, h)

	dialHub(t, srv)
	waitForClients(t, h, 1)

	h.Close()
	assert.Equal(t, 0, h.ClientCount())
}

func TestBroadcastSkipsSlowClients(t *testing.T) {
	h := NewHub()

	// a client nobody is draining: the buffer fills, later frames drop
	blocked := &Client{send: make(chan []byte, 1)}
	h.Register(blocked)

	h.Broadcast(domain.EventProductUpdated)
	h.Broadcast(domain.EventProductUpdated)
	h.Broadcast(domain.EventProductUpdated)

	assert.Len(t, blocked.send, 1)
}
