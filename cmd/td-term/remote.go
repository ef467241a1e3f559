package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/gorilla/websocket"

	"github.com/Pipe0105/TD-Modelamiento/internal/event"
	"github.com/Pipe0105/TD-Modelamiento/internal/server"
	"github.com/Pipe0105/TD-Modelamiento/internal/state"
)

// wireMessage - сообщение /ws/state с отложенным разбором данных.
type wireMessage struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

type wireEvent struct {
	Type event.EventType `json:"type"`
}

// spectator показывает состояние удалённого td-server.
type spectator struct {
	conn   *websocket.Conn
	view   *view
	sounds event.Listener
	last   state.Snapshot
	status string
}

func dialSpectator(url string, v *view, sounds event.Listener) (*spectator, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", url, err)
	}
	return &spectator{conn: conn, view: v, sounds: sounds, status: "spectating " + url}, nil
}

// handleMessage обновляет снимок; true означает, что нужно перерисовать.
func (s *spectator) handleMessage(raw []byte) (bool, error) {
	var msg wireMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return false, err
	}
	switch msg.Type {
	case server.MessageTypeSnapshot, server.MessageTypeHello:
		var snap state.Snapshot
		if err := json.Unmarshal(msg.Data, &snap); err != nil {
			return false, fmt.Errorf("bad snapshot: %w", err)
		}
		s.last = snap
		return true, nil
	case server.MessageTypeEvent:
		var ev wireEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			return false, err
		}
		if s.sounds != nil {
			s.sounds.OnEvent(event.Event{Type: ev.Type})
		}
	case server.MessageTypeRunEnd:
		var rec state.RunRecord
		if err := json.Unmarshal(msg.Data, &rec); err == nil {
			s.status = fmt.Sprintf("run ended: %s on %s at wave %d", rec.Outcome, rec.Level, rec.Wave)
			return true, nil
		}
	}
	return false, nil
}

func (s *spectator) run(screen tcell.Screen) {
	defer s.conn.Close()

	messages := make(chan []byte, 16)
	go func() {
		defer close(messages)
		for {
			_, data, err := s.conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("connection lost: %v", err)
				}
				return
			}
			messages <- data
		}
	}()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case data, ok := <-messages:
			if !ok {
				return
			}
			redraw, err := s.handleMessage(data)
			if err != nil {
				s.status = err.Error()
				redraw = true
			}
			if redraw {
				s.view.draw(s.last, s.status)
			}
		case ev, ok := <-events:
			if !ok {
				return
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || key.Rune() == 'q' {
					return
				}
			}
		}
	}
}
