package audio

import (
	"sync"
	"time"

	"platanus-survivor/internal/event"
)

// Sink проигрывает тон. Вызов не должен блокировать симуляцию.
type Sink interface {
	Play(t Tone)
}

// SoundManager слушает события и проигрывает сигналы.
// Один и тот же сигнал не чаще, чем раз в throttle.
type SoundManager struct {
	mu       sync.Mutex
	sink     Sink
	muted    bool
	throttle time.Duration
	last     map[event.EventType]time.Time
	now      func() time.Time
}

func NewSoundManager(sink Sink, throttle time.Duration) *SoundManager {
	return &SoundManager{
		sink:     sink,
		throttle: throttle,
		last:     make(map[event.EventType]time.Time),
		now:      time.Now,
	}
}

// Attach подписывает менеджер на все озвучиваемые события
func (sm *SoundManager) Attach(d *event.Dispatcher) {
	d.SubscribeAll(sm, CueEvents()...)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	tone, ok := CueFor(e.Type)
	if !ok {
		return
	}
	sm.mu.Lock()
	if sm.muted || sm.sink == nil {
		sm.mu.Unlock()
		return
	}
	now := sm.now()
	if prev, seen := sm.last[e.Type]; seen && now.Sub(prev) < sm.throttle {
		sm.mu.Unlock()
		return
	}
	sm.last[e.Type] = now
	sink := sm.sink
	sm.mu.Unlock()

	sink.Play(tone)
}

func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// ToggleMute переключает звук и возвращает новое состояние
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}
