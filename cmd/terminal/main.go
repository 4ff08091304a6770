// cmd/terminal/main.go
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"platanus-survivor/internal/app"
	"platanus-survivor/internal/audio"
	"platanus-survivor/internal/audio/speakersink"
	"platanus-survivor/internal/config"
	"platanus-survivor/internal/defs"
	"platanus-survivor/internal/event"
	"platanus-survivor/internal/input"
	"platanus-survivor/internal/storage"
	"platanus-survivor/internal/tty"
	"platanus-survivor/internal/utils"

	"github.com/gdamore/tcell/v2"
)

const cueVolume = 0.2

func main() {
	// терминал занят кадром, логи только в файл
	logPath := utils.GetEnvDefault("PLATANUS_LOG", os.DevNull)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))

	settings := app.LoadSettings()
	balance, err := defs.LoadBalanceOrDefault(settings.BalancePath)
	if err != nil {
		log.Fatalf("load balance: %v", err)
	}

	leaderboard, closer := storage.OpenLeaderboard(settings.DBPath, config.LeaderboardSize, slog.Default())
	defer closer.Close()

	dispatcher := event.NewDispatcher()
	var sound *audio.SoundManager
	if sink, err := speakersink.Open(config.AudioSampleRate, cueVolume); err != nil {
		slog.Warn("audio unavailable, running silent", "err", err)
	} else {
		defer sink.Close()
		sound = audio.NewSoundManager(sink, config.AudioCueThrottleMs*time.Millisecond)
		sound.SetMuted(settings.Muted)
		sound.Attach(dispatcher)
	}

	latch := input.NewLatch(config.TerminalKeyHoldMs * time.Millisecond)
	game := app.NewGame(app.Options{
		Balance:         balance,
		Input:           latch,
		Leaderboard:     leaderboard,
		EventDispatcher: dispatcher,
		Rng:             utils.NewPRNGService(settings.Seed),
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal init: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting terminal session", "seed", settings.Seed)
	if err := tty.NewRunner(screen, game, latch, sound).Run(ctx); err != nil {
		slog.Error("terminal session failed", "err", err)
		os.Exit(1)
	}
}
