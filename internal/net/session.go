package net

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/connorfinan79/Arena/internal/net/protocol"
)

// Session is one connected client. The read and write pumps run on their own
// goroutines; everything else (State, CharID, pending) is touched only from
// the game loop goroutine.
type Session struct {
	ID  uint64
	UID uuid.UUID

	State  protocol.SessionState
	CharID int64 // 0 until joined

	conn *websocket.Conn
	log  *zap.Logger

	out    chan []byte
	closed chan struct{}

	// pending buffers outbound messages during a tick; FlushOutput hands
	// them to the write pump in one batch at the output phase.
	pending [][]byte

	// token bucket for inbound intents, refilled in readPump
	bucket     float64
	bucketMax  float64
	refillRate float64 // intents per second; 0 disables limiting
	lastRefill time.Time

	writeTimeout time.Duration
}

// SendJSON marshals msg and queues it for the next flush. Called only from
// the game loop goroutine.
func (s *Session) SendJSON(msg any) {
	raw, err := json.Marshal(msg)
	if err != nil {
		s.log.Error("marshal outbound message", zap.Error(err))
		return
	}
	s.pending = append(s.pending, raw)
}

// FlushOutput moves all pending messages to the write pump. If the out
// channel is full the session is too slow to keep up and gets closed rather
// than stalling the tick.
func (s *Session) FlushOutput() {
	for _, raw := range s.pending {
		select {
		case s.out <- raw:
		default:
			s.log.Warn("session output queue full, closing",
				zap.Uint64("session", s.ID))
			s.Close()
			s.pending = s.pending[:0]
			return
		}
	}
	s.pending = s.pending[:0]
}

// Close shuts the session down. Idempotent; safe from any goroutine.
func (s *Session) Close() {
	select {
	case <-s.closed:
	default:
		close(s.closed)
		_ = s.conn.Close()
	}
}

// Closed reports whether Close has been called.
func (s *Session) Closed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

// allowIntent applies the per-session token bucket. Called from readPump.
func (s *Session) allowIntent(now time.Time) bool {
	if s.refillRate <= 0 {
		return true
	}
	s.bucket += now.Sub(s.lastRefill).Seconds() * s.refillRate
	s.lastRefill = now
	if s.bucket > s.bucketMax {
		s.bucket = s.bucketMax
	}
	if s.bucket < 1 {
		return false
	}
	s.bucket--
	return true
}

func (s *Session) readPump(srv *Server) {
	defer func() {
		s.Close()
		select {
		case srv.Closed <- s:
		default:
		}
	}()
	for {
		if srv.readTimeout > 0 {
			_ = s.conn.SetReadDeadline(time.Now().Add(srv.readTimeout))
		}
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("read error", zap.Uint64("session", s.ID), zap.Error(err))
			}
			return
		}
		var in protocol.ClientIntent
		if err := json.Unmarshal(raw, &in); err != nil {
			s.log.Debug("bad intent payload", zap.Uint64("session", s.ID), zap.Error(err))
			continue
		}
		if !s.allowIntent(time.Now()) {
			s.log.Debug("intent rate limited", zap.Uint64("session", s.ID))
			continue
		}
		select {
		case srv.InQueue <- InboundIntent{Sess: s, Intent: &in}:
		default:
			// inbound queue full: drop rather than block the pump
			s.log.Warn("server intent queue full, dropping",
				zap.Uint64("session", s.ID))
		}
	}
}

func (s *Session) writePump() {
	defer s.Close()
	for {
		select {
		case raw := <-s.out:
			if s.writeTimeout > 0 {
				_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				return
			}
		case <-s.closed:
			return
		}
	}
}
