package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/venn-social/vennd/pkg/notify"
)

// MatchGateway is a capturing stand-in for the platform notification
// gateway. The real webhook client posts to it; tests read back what the
// gateway received.
type MatchGateway struct {
	srv *httptest.Server
	svc *notify.Service

	mu       sync.Mutex
	payloads []notify.MatchCreatedPayload
}

func newMatchGateway(t *testing.T) *MatchGateway {
	t.Helper()
	g := &MatchGateway{}
	g.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p notify.MatchCreatedPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		g.mu.Lock()
		g.payloads = append(g.payloads, p)
		g.mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(g.srv.Close)

	g.svc = notify.NewServiceWithClients(notify.NewWebhookClient(g.srv.URL, 2*time.Second), nil)
	return g
}

// NotifyService returns the notification service wired to this gateway.
func (g *MatchGateway) NotifyService() *notify.Service {
	return g.svc
}

// Deliveries returns a copy of everything the gateway has received.
func (g *MatchGateway) Deliveries() []notify.MatchCreatedPayload {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]notify.MatchCreatedPayload, len(g.payloads))
	copy(out, g.payloads)
	return out
}

// WaitForDelivery blocks until the gateway has received at least one
// payload, returning the first.
func (g *MatchGateway) WaitForDelivery(t *testing.T, timeout time.Duration) notify.MatchCreatedPayload {
	t.Helper()
	deadline := time.After(timeout)
	for {
		if got := g.Deliveries(); len(got) > 0 {
			return got[0]
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for a gateway delivery")
			return notify.MatchCreatedPayload{}
		case <-time.After(20 * time.Millisecond):
		}
	}
}
