package progress

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, h *Hub, runID uuid.UUID) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, h.ServeWS(w, r, runID))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastReachesSubscriber(t *testing.T) {
	h := NewHub()
	runID := uuid.New()
	srv := newTestServer(t, h, runID)
	conn := dial(t, srv)

	time.Sleep(10 * time.Millisecond) // let the server side finish subscribing

	h.Broadcast(Event{RunID: runID, Stage: "temperature", Done: false})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Contains(t, string(data), "temperature")
}

func TestHubBroadcastSkipsOtherRuns(t *testing.T) {
	h := NewHub()
	runID := uuid.New()
	otherRunID := uuid.New()
	srv := newTestServer(t, h, runID)
	conn := dial(t, srv)

	time.Sleep(10 * time.Millisecond)

	h.Broadcast(Event{RunID: otherRunID, Stage: "precipitation"})

	conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err := conn.ReadMessage()
	require.Error(t, err) // deadline exceeded: nothing was sent to this run's subscriber
}

func TestHubUnsubscribeOnClose(t *testing.T) {
	h := NewHub()
	runID := uuid.New()
	srv := newTestServer(t, h, runID)
	conn := dial(t, srv)

	time.Sleep(10 * time.Millisecond)
	conn.Close()
	time.Sleep(10 * time.Millisecond)

	h.mu.Lock()
	count := len(h.subs[runID])
	h.mu.Unlock()
	require.Equal(t, 0, count)
}
