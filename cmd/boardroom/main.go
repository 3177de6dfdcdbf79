package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"go.uber.org/zap"

	"boardroom/internal/app"
	"boardroom/internal/config"
	"boardroom/internal/domain"
	"boardroom/internal/ports/term"
	"boardroom/internal/ports/ws"
)

func main() {
	configPath := flag.String("config", "client.json", "path to the client config file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		pterm.Error.Printfln("logger: %v", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := config.LoadClientConfig(*configPath); err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	cfg := config.GetClientConfig()

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Board", pterm.FgCyan.ToStyle()),
		putils.LettersFromStringWithStyle("room", pterm.FgDarkGray.ToStyle()),
	).Render()

	username := cfg.Username
	if username == "" {
		username, _ = pterm.DefaultInteractiveTextInput.
			WithDefaultText("Enter your username").Show()
	}
	channel := cfg.Channel

	state := domain.NewGameState()
	presenter := term.New()
	transport := ws.New(cfg.ServerURL, logger.Named("ws"))
	dispatcher := app.NewDispatcher(transport, logger.Named("dispatch"))
	orchestrator := app.NewOrchestrator(state, presenter, dispatcher, logger.Named("game"))
	client := app.NewClient(dispatcher, orchestrator, logger)
	transport.Subscribe(client)

	// Connect queues until the socket opens and flushes on the open
	// notification.
	orchestrator.JoinGame(username, channel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dialCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.DialTimeoutSeconds)*time.Second)
	err = transport.Dial(dialCtx)
	cancel()
	if err != nil {
		logger.Fatal("dial", zap.String("url", cfg.ServerURL), zap.Error(err))
	}
	defer transport.Close()

	go term.NewInputLoop(orchestrator, os.Stdin).Run(ctx)

	if err := client.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("client loop", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
