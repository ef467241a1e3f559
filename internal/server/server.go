package server

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"github.com/Pipe0105/TD-Modelamiento/internal/defs"
	"github.com/Pipe0105/TD-Modelamiento/internal/persistence"
	"github.com/Pipe0105/TD-Modelamiento/internal/state"
	"github.com/Pipe0105/TD-Modelamiento/internal/types"
)

const requestTimeout = 2 * time.Second

var errNoGame = errors.New("no level is being played")

// Server - HTTP API и поток снимков поверх Runner.
type Server struct {
	app    *fiber.App
	runner *Runner
	hub    *Hub
	store  persistence.Storage
	levels []defs.Level
}

type clickRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type buildRequest struct {
	Spot int    `json:"spot"`
	Type string `json:"type"`
}

type upgradeRequest struct {
	Tower types.EntityID `json:"tower"`
	Stat  string         `json:"stat"`
}

type selectTypeRequest struct {
	Type string `json:"type"`
}

// New builds the fiber app. store may be nil, then /api/runs is empty.
func New(runner *Runner, hub *Hub, store persistence.Storage, levels []defs.Level) *Server {
	s := &Server{
		app:    fiber.New(fiber.Config{DisableStartupMessage: true}),
		runner: runner,
		hub:    hub,
		store:  store,
		levels: levels,
	}

	s.app.Use(logger.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	api := s.app.Group("/api")
	api.Get("/health", s.handleHealth)
	api.Get("/levels", s.handleLevels)
	api.Get("/state", s.handleState)
	api.Get("/runs", s.handleRuns)
	api.Post("/session/:action", s.handleSession)
	api.Post("/click", s.handleClick)
	api.Post("/build", s.handleBuild)
	api.Post("/upgrade", s.handleUpgrade)
	api.Post("/select-type", s.handleSelectType)

	s.app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	s.app.Get("/ws/state", websocket.New(s.handleStateSocket))
	return s
}

func (s *Server) App() *fiber.App { return s.app }

func (s *Server) Listen(addr string) error {
	log.Printf("td-server listening on %s", addr)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) do(c *fiber.Ctx, fn func(*state.Session) (interface{}, error)) (interface{}, error) {
	ctx, cancel := context.WithTimeout(c.Context(), requestTimeout)
	defer cancel()
	return s.runner.Do(ctx, fn)
}

// respond переводит ошибки сессии в HTTP статусы.
func respond(c *fiber.Ctx, v interface{}, err error) error {
	switch {
	case err == nil:
		return c.JSON(v)
	case errors.Is(err, state.ErrTransition), errors.Is(err, errNoGame):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, defs.ErrUnknownStat):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, ErrStopped):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	clients := 0
	if s.hub != nil {
		clients = s.hub.ClientCount()
	}
	return c.JSON(fiber.Map{
		"status":  "OK",
		"clients": clients,
		"time":    time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleLevels(c *fiber.Ctx) error {
	out := make([]fiber.Map, 0, len(s.levels))
	for i, l := range s.levels {
		out = append(out, fiber.Map{
			"index":          i,
			"name":           l.Name,
			"waves_to_win":   l.WavesToWin,
			"starting_money": l.StartingMoney,
			"starting_lives": l.StartingLives,
		})
	}
	return c.JSON(out)
}

func (s *Server) handleState(c *fiber.Ctx) error {
	v, err := s.do(c, func(sess *state.Session) (interface{}, error) {
		return sess.Snapshot(), nil
	})
	return respond(c, v, err)
}

func (s *Server) handleRuns(c *fiber.Ctx) error {
	if s.store == nil {
		return c.JSON([]state.RunRecord{})
	}
	limit := c.QueryInt("limit", 20)
	runs, err := s.store.RecentRuns(c.Context(), limit)
	if err != nil {
		return respond(c, nil, err)
	}
	if runs == nil {
		runs = []state.RunRecord{}
	}
	return c.JSON(runs)
}

func (s *Server) handleSession(c *fiber.Ctx) error {
	var action func(*state.Session) error
	switch c.Params("action") {
	case "start":
		action = (*state.Session).Start
	case "pause":
		action = (*state.Session).Pause
	case "resume":
		action = (*state.Session).Resume
	case "restart":
		action = (*state.Session).Restart
	case "next":
		action = (*state.Session).NextLevel
	case "menu":
		action = (*state.Session).BackToMenu
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown action " + c.Params("action")})
	}

	v, err := s.do(c, func(sess *state.Session) (interface{}, error) {
		if err := action(sess); err != nil {
			return nil, err
		}
		return sess.Snapshot(), nil
	})
	return respond(c, v, err)
}

func (s *Server) handleClick(c *fiber.Ctx) error {
	var req clickRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	v, err := s.do(c, func(sess *state.Session) (interface{}, error) {
		sess.HandleClick(req.X, req.Y)
		return sess.Snapshot(), nil
	})
	return respond(c, v, err)
}

// playing возвращает ошибку, если уровень сейчас не идёт.
func playing(sess *state.Session) error {
	if sess.Phase() != state.PhasePlaying || sess.Game() == nil {
		return errNoGame
	}
	return nil
}

func (s *Server) handleBuild(c *fiber.Ctx) error {
	var req buildRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	v, err := s.do(c, func(sess *state.Session) (interface{}, error) {
		if err := playing(sess); err != nil {
			return nil, err
		}
		return fiber.Map{"success": sess.Game().PlaceTower(req.Spot, req.Type)}, nil
	})
	return respond(c, v, err)
}

func (s *Server) handleUpgrade(c *fiber.Ctx) error {
	var req upgradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	stat, err := defs.ParseUpgradeStat(req.Stat)
	if err != nil {
		return respond(c, nil, err)
	}
	v, err := s.do(c, func(sess *state.Session) (interface{}, error) {
		if err := playing(sess); err != nil {
			return nil, err
		}
		return fiber.Map{"success": sess.Game().UpgradeTower(req.Tower, stat)}, nil
	})
	return respond(c, v, err)
}

func (s *Server) handleSelectType(c *fiber.Ctx) error {
	var req selectTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	v, err := s.do(c, func(sess *state.Session) (interface{}, error) {
		if sess.Game() == nil {
			return nil, errNoGame
		}
		return fiber.Map{"success": sess.Game().SelectTowerType(req.Type)}, nil
	})
	return respond(c, v, err)
}

// handleStateSocket шлёт приветствие со снимком и держит соединение до закрытия клиентом.
func (s *Server) handleStateSocket(conn *websocket.Conn) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	snap, err := s.runner.Snapshot(ctx)
	cancel()
	if err == nil {
		_ = conn.WriteJSON(newMessage(MessageTypeHello, snap))
	}

	s.hub.register <- conn
	defer func() {
		s.hub.unregister <- conn
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
