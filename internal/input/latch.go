package input

import (
	"sync"
	"time"

	"platanus-survivor/internal/interfaces"
)

// Latch эмулирует удержание клавиш там, где приходят только нажатия (терминал).
// Клавиша считается зажатой hold после последнего нажатия; автоповтор терминала
// продлевает удержание. Противоположное направление отпускает клавишу сразу.
type Latch struct {
	mu    sync.Mutex
	hold  time.Duration
	until map[interfaces.Key]time.Time
	now   func() time.Time
}

func NewLatch(hold time.Duration) *Latch {
	return &Latch{
		hold:  hold,
		until: make(map[interfaces.Key]time.Time),
		now:   time.Now,
	}
}

var opposite = map[interfaces.Key][]interfaces.Key{
	interfaces.KeyLeft:  {interfaces.KeyRight, interfaces.KeyD},
	interfaces.KeyA:     {interfaces.KeyRight, interfaces.KeyD},
	interfaces.KeyRight: {interfaces.KeyLeft, interfaces.KeyA},
	interfaces.KeyD:     {interfaces.KeyLeft, interfaces.KeyA},
	interfaces.KeyUp:    {interfaces.KeyDown, interfaces.KeyS},
	interfaces.KeyW:     {interfaces.KeyDown, interfaces.KeyS},
	interfaces.KeyDown:  {interfaces.KeyUp, interfaces.KeyW},
	interfaces.KeyS:     {interfaces.KeyUp, interfaces.KeyW},
}

// Press отмечает нажатие
func (l *Latch) Press(key interfaces.Key) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, o := range opposite[key] {
		delete(l.until, o)
	}
	l.until[key] = l.now().Add(l.hold)
}

func (l *Latch) IsDown(key interfaces.Key) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	deadline, ok := l.until[key]
	if !ok {
		return false
	}
	if l.now().After(deadline) {
		delete(l.until, key)
		return false
	}
	return true
}

// ReleaseAll сбрасывает все удержания
func (l *Latch) ReleaseAll() {
	l.mu.Lock()
	clear(l.until)
	l.mu.Unlock()
}
