package net

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/connorfinan79/Arena/internal/config"
	"github.com/connorfinan79/Arena/internal/net/protocol"
)

// InboundIntent pairs a decoded intent with its origin session.
type InboundIntent struct {
	Sess   *Session
	Intent *protocol.ClientIntent
}

// Server is the websocket gateway. It upgrades connections, runs the per
// session pumps, and feeds decoded intents into InQueue for the game loop.
type Server struct {
	// InQueue carries decoded intents to the input system.
	InQueue chan InboundIntent
	// Accepted carries freshly upgraded sessions to the input system.
	Accepted chan *Session
	// Closed carries sessions whose read pump exited.
	Closed chan *Session

	log         *zap.Logger
	cfg         config.NetworkConfig
	rl          config.RateLimitConfig
	upgrader    websocket.Upgrader
	httpServer  *http.Server
	listener    net.Listener
	nextSession atomic.Uint64
	readTimeout time.Duration
}

func NewServer(cfg config.NetworkConfig, rl config.RateLimitConfig, log *zap.Logger) *Server {
	return &Server{
		InQueue:  make(chan InboundIntent, cfg.InQueueSize),
		Accepted: make(chan *Session, 64),
		Closed:   make(chan *Session, 64),
		log:      log,
		cfg:      cfg,
		rl:       rl,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// clients are game launchers, not browsers
			CheckOrigin: func(*http.Request) bool { return true },
		},
		readTimeout: cfg.ReadTimeout,
	}
}

// Listen binds the address. Split from Serve so the caller can log the
// resolved address before the accept loop starts.
func (srv *Server) Listen() error {
	ln, err := net.Listen("tcp", srv.cfg.BindAddress)
	if err != nil {
		return err
	}
	srv.listener = ln

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleWS)
	srv.httpServer = &http.Server{Handler: mux}
	return nil
}

// Serve runs the accept loop until Shutdown. Blocks; run on its own goroutine.
func (srv *Server) Serve() error {
	err := srv.httpServer.Serve(srv.listener)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Addr returns the bound address.
func (srv *Server) Addr() net.Addr {
	return srv.listener.Addr()
}

// Shutdown stops accepting and closes the listener. Live sessions are closed
// by the game loop during its own shutdown.
func (srv *Server) Shutdown(ctx context.Context) error {
	return srv.httpServer.Shutdown(ctx)
}

func (srv *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		srv.log.Debug("upgrade failed", zap.Error(err))
		return
	}

	s := &Session{
		ID:           srv.nextSession.Add(1),
		UID:          uuid.New(),
		State:        protocol.StateJoining,
		conn:         conn,
		log:          srv.log,
		out:          make(chan []byte, srv.cfg.OutQueueSize),
		closed:       make(chan struct{}),
		writeTimeout: srv.cfg.WriteTimeout,
		lastRefill:   time.Now(),
	}
	if srv.rl.Enabled {
		s.refillRate = float64(srv.rl.IntentsPerSecond)
		s.bucketMax = float64(srv.rl.IntentsPerSecond)
		s.bucket = s.bucketMax
	}

	srv.log.Info("session connected",
		zap.Uint64("session", s.ID),
		zap.String("remote", conn.RemoteAddr().String()))

	select {
	case srv.Accepted <- s:
	default:
		// accept queue full: refuse rather than leak an untracked session
		srv.log.Warn("accept queue full, refusing session", zap.Uint64("session", s.ID))
		s.Close()
		return
	}

	go s.writePump()
	go s.readPump(srv)
}
