// Command demo serves a shared text buffer over WebSockets. Every client
// edits the same rune-measured list and owns a caret, a marker which rides
// along as other clients insert and remove text around it.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/samber/lo"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/samthor/skiplist/skip"
	"github.com/samthor/skiplist/text"
)

var (
	flagAddr  = flag.String("addr", ":8080", "listen address")
	flagRate  = flag.Float64("rate", 50, "edits per second per client")
	flagBurst = flag.Int("burst", 20, "edit burst per client")
)

type editRequest struct {
	Op     string `json:"op"` // "insert", "remove" or "caret"
	Pos    int    `json:"pos"`
	Text   string `json:"text,omitempty"`
	Length int    `json:"len,omitempty"`
}

type editResponse struct {
	Err    string `json:"err,omitempty"`
	Len    int    `json:"len"`
	Count  int    `json:"count"`
	Caret  *int   `json:"caret,omitempty"`
	Carets []int  `json:"carets"`
}

// buffer is the shared document. The list itself is not goroutine-safe, so
// every operation, marker reads included, runs under the lock.
type buffer struct {
	mu     sync.Mutex
	list   skip.List[string]
	carets map[int]*skip.Marker[string]
	nextID int
}

func newBuffer() *buffer {
	return &buffer{
		list:   text.New(0),
		carets: map[int]*skip.Marker[string]{},
	}
}

func (b *buffer) join() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.carets[id] = nil
	return id
}

func (b *buffer) leave(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if m := b.carets[id]; m != nil {
		m.Release()
	}
	delete(b.carets, id)
}

func (b *buffer) apply(id int, req editRequest) editResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	var opErr error
	switch req.Op {
	case "insert":
		var m *skip.Marker[string]
		if m, opErr = b.list.Insert(req.Pos, req.Text); opErr == nil {
			b.setCaret(id, m)
		}

	case "remove":
		opErr = b.list.Remove(req.Pos, req.Length)

	case "caret":
		var m *skip.Marker[string]
		if m, opErr = b.list.MarkerAt(req.Pos); opErr == nil {
			b.setCaret(id, m)
		}

	default:
		log.Printf("client=%d sent unknown op %q", id, req.Op)
	}

	out := editResponse{
		Len:   b.list.Len(),
		Count: b.list.Count(),
		Carets: lo.FilterMap(lo.Values(b.carets), func(m *skip.Marker[string], _ int) (int, bool) {
			if m == nil || !m.Valid() {
				return 0, false
			}
			at, err := m.Position()
			return at, err == nil
		}),
	}
	if opErr != nil {
		out.Err = opErr.Error()
	}
	if m := b.carets[id]; m != nil && m.Valid() {
		if at, err := m.Position(); err == nil {
			out.Caret = lo.ToPtr(at)
		}
	}
	return out
}

func (b *buffer) setCaret(id int, m *skip.Marker[string]) {
	if prev := b.carets[id]; prev != nil {
		prev.Release()
	}
	b.carets[id] = m
}

// socketHandler runs one client: read an edit, apply it under the client's
// rate limit, reply with the new state.
func socketHandler(b *buffer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sock, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Printf("got err setting up websocket %s: %v", r.URL.Path, err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		limit := rate.NewLimiter(rate.Limit(*flagRate), *flagBurst)
		id := b.join()
		defer b.leave(id)
		log.Printf("client=%d connected", id)

		ctx := r.Context()
		for {
			var req editRequest
			if err := wsjson.Read(ctx, sock, &req); err != nil {
				log.Printf("client=%d gone: %v", id, err)
				sock.Close(websocket.StatusNormalClosure, "")
				return
			}
			if err := limit.Wait(ctx); err != nil {
				sock.Close(websocket.StatusPolicyViolation, "too fast")
				return
			}

			if err := wsjson.Write(ctx, sock, b.apply(id, req)); err != nil {
				sock.Close(websocket.StatusInternalError, "")
				return
			}
		}
	}
}

// h2cHandler wraps the given handler so it can serve unencrypted h2 traffic.
func h2cHandler(h http.Handler) http.Handler {
	return h2c.NewHandler(h, &http2.Server{})
}

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := newBuffer()

	mux := http.NewServeMux()
	mux.Handle("/sock", socketHandler(b))
	mux.HandleFunc("/state", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, item := range b.list.Iter() {
			if _, err := w.Write([]byte(item)); err != nil {
				return
			}
		}
	})

	server := &http.Server{Addr: *flagAddr, Handler: h2cHandler(mux)}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Printf("listening on %s", *flagAddr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-egCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
