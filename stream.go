package main

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"arayWorlds/events"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

// eventStream renders one subscriber's bus events as server-sent events. It
// opens with a "ready" event and ends when ctx is done or the bus closes.
type eventStream struct {
	ctx     context.Context
	userID  string
	events  <-chan events.Event
	cancel  func()
	started bool
	pending bytes.Buffer
}

func newEventStream(ctx context.Context, bus *events.Bus, userID string) *eventStream {
	stream, cancel := bus.Subscribe(events.ForUser(userID), 32)
	return &eventStream{
		ctx:    ctx,
		userID: userID,
		events: stream,
		cancel: cancel,
	}
}

func (s *eventStream) next() (sse.Event, bool) {
	if !s.started {
		s.started = true
		return sse.Event{Event: "ready", Data: gin.H{"userId": s.userID}}, true
	}
	select {
	case <-s.ctx.Done():
		return sse.Event{}, false
	case e, ok := <-s.events:
		if !ok {
			return sse.Event{}, false
		}
		return sse.Event{
			Id:    e.EventID(),
			Event: string(e.EventKind()),
			Data:  e,
		}, true
	}
}

func (s *eventStream) Read(p []byte) (int, error) {
	for s.pending.Len() == 0 {
		ev, ok := s.next()
		if !ok {
			return 0, io.EOF
		}
		if err := sse.Encode(&s.pending, ev); err != nil {
			return 0, err
		}
	}
	return s.pending.Read(p)
}

// WriteTo flushes after every event so clients see them as they happen.
func (s *eventStream) WriteTo(w io.Writer) (int64, error) {
	flusher, _ := w.(http.Flusher)
	var written int64
	for {
		ev, ok := s.next()
		if !ok {
			return written, nil
		}
		var buf bytes.Buffer
		if err := sse.Encode(&buf, ev); err != nil {
			return written, err
		}
		n, err := w.Write(buf.Bytes())
		written += int64(n)
		if err != nil {
			return written, err
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

func (s *eventStream) Close() error {
	s.cancel()
	return nil
}
