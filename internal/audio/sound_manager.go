package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Pipe0105/TD-Modelamiento/internal/event"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// События, на которые подписывается SoundManager
var CueEvents = []event.EventType{
	event.EnemyKilled,
	event.EnemyEscaped,
	event.ProjectileFired,
	event.LevelCleared,
	event.LivesDepleted,
}

// SoundManager играет короткие синтезированные сигналы на игровые события.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	lastShot    time.Time
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize открывает устройство. Ошибка означает, что звука не будет,
// а вызовы Play* просто ничего не делают.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// OnEvent реализует event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		sm.play(KillCue())
	case event.EnemyEscaped:
		sm.play(EscapeCue())
	case event.ProjectileFired:
		// Скорострельные башни дают десятки выстрелов в секунду
		sm.mu.Lock()
		now := time.Now()
		tooSoon := now.Sub(sm.lastShot) < 60*time.Millisecond
		if !tooSoon {
			sm.lastShot = now
		}
		sm.mu.Unlock()
		if !tooSoon {
			sm.play(ShotCue())
		}
	case event.LevelCleared:
		sm.play(FanfareCue())
	case event.LivesDepleted:
		sm.play(GameOverCue())
	}
}

func KillCue() beep.Streamer {
	return beep.Take(sampleRate.N(120*time.Millisecond), NewToneGenerator(sampleRate, 660, 880, 0.25, 20))
}

func EscapeCue() beep.Streamer {
	return beep.Take(sampleRate.N(250*time.Millisecond), NewToneGenerator(sampleRate, 220, 110, 0.3, 8))
}

func ShotCue() beep.Streamer {
	return beep.Take(sampleRate.N(40*time.Millisecond), NewToneGenerator(sampleRate, 1200, 900, 0.08, 60))
}

func FanfareCue() beep.Streamer {
	return beep.Seq(
		beep.Take(sampleRate.N(120*time.Millisecond), NewToneGenerator(sampleRate, 523, 523, 0.2, 4)),
		beep.Take(sampleRate.N(120*time.Millisecond), NewToneGenerator(sampleRate, 659, 659, 0.2, 4)),
		beep.Take(sampleRate.N(250*time.Millisecond), NewToneGenerator(sampleRate, 784, 784, 0.2, 4)),
	)
}

func GameOverCue() beep.Streamer {
	return beep.Take(sampleRate.N(600*time.Millisecond), NewToneGenerator(sampleRate, 300, 80, 0.3, 3))
}
