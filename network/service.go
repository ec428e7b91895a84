package network

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/lixenwraith/labyrinth/core"
	"github.com/lixenwraith/labyrinth/maze"
	"github.com/lixenwraith/labyrinth/scene"
)

// Largest grid side a remote client may request
const MaxRemoteDimension = 64

var ErrDimension = errors.New("dimension out of range")

//go:embed static/index.html
var indexHTML []byte

// Service owns one maze and streams its passes to websocket viewers.
// Regeneration is serialized; snapshots are immutable once encoded.
type Service struct {
	cfg    *Config
	logger *log.Logger
	hub    *Hub

	mu     sync.Mutex
	maze   *maze.Maze
	seq    uint64
	latest []byte
}

// NewService builds the maze and runs the first pass
func NewService(cfg *Config, mcfg maze.Config, logger *log.Logger, opts ...maze.Option) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Service{
		cfg:    cfg,
		logger: logger,
		hub:    NewHub(cfg.MaxClients, cfg.WriteTimeout),
	}
	opts = append([]maze.Option{maze.WithLogger(logger)}, opts...)
	s.maze = maze.New(mcfg, opts...)

	if _, err := s.Regenerate(RegenerateRequest{}); err != nil {
		return nil, err
	}
	return s, nil
}

// Regenerate applies req, runs a pass and broadcasts the snapshot
func (s *Service) Regenerate(req RegenerateRequest) (scene.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.maze.Config()
	if req.Width != nil {
		if *req.Width < 1 || *req.Width > MaxRemoteDimension {
			return scene.Snapshot{}, fmt.Errorf("%w: width %d", ErrDimension, *req.Width)
		}
		cfg.Width = *req.Width
	}
	if req.Height != nil {
		if *req.Height < 1 || *req.Height > MaxRemoteDimension {
			return scene.Snapshot{}, fmt.Errorf("%w: height %d", ErrDimension, *req.Height)
		}
		cfg.Height = *req.Height
	}
	if req.Rooms != nil {
		cfg.Rooms.Enabled = *req.Rooms
	}
	switch {
	case req.Seed != nil:
		cfg.Seed = *req.Seed
		cfg.SeedMode = maze.SeedFixed
	case req.Random:
		cfg.SeedMode = maze.SeedRandom
		cfg.CustomSeed = false
	}
	s.maze.SetConfig(cfg)
	s.maze.Regenerate()

	snap := scene.Capture(s.maze, scene.Build(s.maze))
	s.seq++
	data, err := Encode(MsgSnapshot, s.seq, snap)
	if err != nil {
		return scene.Snapshot{}, err
	}
	s.latest = data
	s.hub.Broadcast(data)

	s.logger.Printf("network: pass %d seed %d, %d clients", s.seq, snap.Seed, s.hub.Len())
	return snap, nil
}

// Latest returns the encoded envelope of the last pass
func (s *Service) Latest() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

func (s *Service) Hub() *Hub { return s.hub }

// Handler routes the viewer page, the snapshot endpoint and the websocket
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexHTML)
	})
	mux.HandleFunc("GET /snapshot", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(s.Latest())
	})
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

func (s *Service) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: s.cfg.InsecureSkipVerify})
	if err != nil {
		s.logger.Printf("network: accept: %v", err)
		return
	}
	if err := s.hub.Add(conn); err != nil {
		_ = conn.Close(websocket.StatusTryAgainLater, err.Error())
		return
	}
	defer s.hub.Remove(conn)
	defer conn.Close(websocket.StatusNormalClosure, "")
	conn.SetReadLimit(s.cfg.ReadLimit)

	ctx := r.Context()
	if err := s.write(ctx, conn, s.Latest()); err != nil {
		return
	}

	for {
		var env Envelope
		if err := wsjson.Read(ctx, conn, &env); err != nil {
			return
		}
		switch env.Type {
		case MsgRegenerate:
			var req RegenerateRequest
			if err := env.DecodePayload(&req); err != nil {
				s.reject(ctx, conn, err)
				continue
			}
			if _, err := s.Regenerate(req); err != nil {
				s.reject(ctx, conn, err)
			}
		default:
			s.reject(ctx, conn, fmt.Errorf("unknown message type %q", env.Type))
		}
	}
}

func (s *Service) write(ctx context.Context, conn *websocket.Conn, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.WriteTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, data)
}

func (s *Service) reject(ctx context.Context, conn *websocket.Conn, cause error) {
	data, err := Encode(MsgError, 0, ErrorPayload{Message: cause.Error()})
	if err != nil {
		return
	}
	_ = s.write(ctx, conn, data)
}

// Serve listens on cfg.Address until ctx is cancelled
func (s *Service) Serve(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Address, Handler: s.Handler()}

	errCh := make(chan error, 1)
	core.Go(func() {
		errCh <- srv.ListenAndServe()
	})
	s.logger.Printf("network: listening on %s", s.cfg.Address)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen %s: %w", s.cfg.Address, err)
	case <-ctx.Done():
	}

	s.hub.CloseAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
