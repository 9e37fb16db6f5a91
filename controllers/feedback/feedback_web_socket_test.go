package feedbackcontroller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Youssef-M-Salama/E-Commerce-Website/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func newFeedServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(zap.NewNop())
	r := gin.New()
	r.GET("/Admin/FeedbackFeed", FeedbackWebSocketHandler(hub))
	return hub, httptest.NewServer(r)
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/Admin/FeedbackFeed"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func TestHub_BroadcastsToEveryClient(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub, srv := newFeedServer(t)
	defer srv.Close()
	defer hub.Close()

	a := dial(t, srv)
	defer a.Close()
	b := dial(t, srv)
	defer b.Close()

	require.Eventually(t, func() bool { return hub.Clients() == 2 }, time.Second, 10*time.Millisecond)

	hub.Publish(models.Feedback{ID: 3, UserName: "Ann", Message: "Lovely"})

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var got models.Feedback
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, uint(3), got.ID)
		assert.Equal(t, "Lovely", got.Message)
	}
}

func TestHub_ClientDisconnectUnregisters(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub, srv := newFeedServer(t)
	defer srv.Close()
	defer hub.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 10*time.Millisecond)

	hub.Publish(models.Feedback{ID: 1, UserName: "x", Message: "y"})
}

func TestHub_CloseRejectsNewClients(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub, srv := newFeedServer(t)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	hub.Close()
	assert.Zero(t, hub.Clients())

	late := dial(t, srv)
	defer late.Close()
	require.NoError(t, late.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := late.ReadMessage()
	assert.Error(t, err)
}
