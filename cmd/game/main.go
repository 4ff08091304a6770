// cmd/game/main.go
package main

import (
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"platanus-survivor/internal/app"
	"platanus-survivor/internal/assets"
	"platanus-survivor/internal/audio"
	"platanus-survivor/internal/audio/ebitensink"
	"platanus-survivor/internal/config"
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/event"
	"platanus-survivor/internal/state"
	"platanus-survivor/internal/storage"
	"platanus-survivor/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

const cueVolume = 0.3

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
	settings := app.LoadSettings()

	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	balance, err := defs.LoadBalanceOrDefault(settings.BalancePath)
	if err != nil {
		log.Fatalf("load balance: %v", err)
	}

	leaderboard, closer := storage.OpenLeaderboard(settings.DBPath, config.LeaderboardSize, slog.Default())
	defer closer.Close()

	dispatcher := event.NewDispatcher()
	sound := audio.NewSoundManager(ebitensink.New(config.AudioSampleRate, cueVolume), config.AudioCueThrottleMs*time.Millisecond)
	sound.SetMuted(settings.Muted)
	sound.Attach(dispatcher)

	game := app.NewGame(app.Options{
		Balance:         balance,
		Input:           state.Keyboard{},
		Leaderboard:     leaderboard,
		EventDispatcher: dispatcher,
		Rng:             utils.NewPRNGService(settings.Seed),
	})

	fonts, err := assets.NewFontManager()
	if err != nil {
		log.Fatalf("fonts: %v", err)
	}
	defer fonts.Close()
	session, err := state.NewSession(game, sound, fonts)
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, session))

	slog.Info("starting", "seed", settings.Seed, "db", settings.DBPath, "muted", settings.Muted)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Platanus Survivor")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()}); err != nil {
		log.Fatal(err)
	}
}
