package server

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Pipe0105/TD-Modelamiento/internal/config"
	"github.com/Pipe0105/TD-Modelamiento/internal/event"
	"github.com/Pipe0105/TD-Modelamiento/internal/persistence"
	"github.com/Pipe0105/TD-Modelamiento/internal/state"
)

// ErrStopped возвращается, когда Runner уже остановлен.
var ErrStopped = errors.New("runner stopped")

// snapshotEvery - рассылать снимок раз в столько тиков.
const snapshotEvery = 3

type command struct {
	fn    func(*state.Session) (interface{}, error)
	reply chan result
}

type result struct {
	value interface{}
	err   error
}

// Runner владеет сессией: тики и команды выполняются в одной горутине.
type Runner struct {
	session  *state.Session
	tickRate int
	hub      *Hub
	store    persistence.Storage
	commands chan command
	done     chan struct{}
	ticks    uint64
}

// NewRunner wires session events and finished runs to the hub and store.
// hub and store may be nil.
func NewRunner(session *state.Session, tickRate int, hub *Hub, store persistence.Storage) *Runner {
	if tickRate <= 0 {
		tickRate = config.DefaultTickRate
	}
	r := &Runner{
		session:  session,
		tickRate: tickRate,
		hub:      hub,
		store:    store,
		commands: make(chan command),
		done:     make(chan struct{}),
	}

	session.Subscribe(event.NewHandler(r.forwardEvent),
		event.WaveStarted, event.WaveEnded, event.LevelCleared, event.LivesDepleted,
		event.TowerPlaced, event.TowerUpgraded)
	session.OnRunEnd(r.saveRun)
	return r
}

// Run тикает симуляцию до отмены ctx.
func (r *Runner) Run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			r.session.Update(dt)
			r.ticks++
			if r.hub != nil && r.ticks%snapshotEvery == 0 && r.hub.ClientCount() > 0 {
				r.hub.Broadcast(newMessage(MessageTypeSnapshot, r.session.Snapshot()))
			}
		case cmd := <-r.commands:
			v, err := cmd.fn(r.session)
			cmd.reply <- result{value: v, err: err}
		}
	}
}

// Do выполняет fn в горутине Runner и ждёт результат.
func (r *Runner) Do(ctx context.Context, fn func(*state.Session) (interface{}, error)) (interface{}, error) {
	cmd := command{fn: fn, reply: make(chan result, 1)}
	select {
	case r.commands <- cmd:
	case <-r.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case res := <-cmd.reply:
		return res.value, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Snapshot is a convenience wrapper around Do.
func (r *Runner) Snapshot(ctx context.Context) (state.Snapshot, error) {
	v, err := r.Do(ctx, func(s *state.Session) (interface{}, error) {
		return s.Snapshot(), nil
	})
	if err != nil {
		return state.Snapshot{}, err
	}
	return v.(state.Snapshot), nil
}

func (r *Runner) forwardEvent(e event.Event) {
	if r.hub == nil {
		return
	}
	r.hub.Broadcast(newMessage(MessageTypeEvent, map[string]interface{}{
		"type": e.Type,
		"data": e.Data,
	}))
}

// saveRun вызывается в горутине Runner; запись уходит в фон, чтобы не тормозить тик.
func (r *Runner) saveRun(rec state.RunRecord) {
	if r.hub != nil {
		r.hub.Broadcast(newMessage(MessageTypeRunEnd, rec))
	}
	if r.store == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.store.SaveRun(ctx, rec); err != nil {
			log.Printf("failed to persist run %s: %v", rec.ID, err)
		}
	}()
}
