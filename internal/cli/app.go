// Package cli implements the interactive FrameCheck client: one upload
// session per tool variant, driven from a read–eval–print loop.
package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/framecheck/framecheck-go/internal/api"
	"github.com/framecheck/framecheck-go/internal/config"
	"github.com/framecheck/framecheck-go/internal/logging"
	"github.com/framecheck/framecheck-go/internal/session"
)

type App struct {
	config   *config.Config
	client   api.Client
	log      logging.Logger
	sessions map[session.Tool]*session.Session
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	client := api.NewHTTPClient(cfg.ServerAddr, cfg.RequestTimeout, log)
	return newApp(cfg, client, log)
}

// newApp wires an App around any api.Client; tests inject fakes here.
func newApp(cfg *config.Config, client api.Client, log logging.Logger) *App {
	if log == nil {
		log = logging.NewNopLogger()
	}

	// Three independent sessions; no shared mutable state between tools.
	sessions := map[session.Tool]*session.Session{
		session.ToolAnalysis:   session.New(session.ToolAnalysis, client, log),
		session.ToolSimilarity: session.New(session.ToolSimilarity, client, log),
		session.ToolCrop:       session.New(session.ToolCrop, client, log),
	}

	return &App{config: cfg, client: client, log: log, sessions: sessions}
}

func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)
	printlnFn("Welcome to the FrameCheck CLI (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

// Close tears down every session, releasing all previews.
func (a *App) Close(ctx context.Context) {
	for _, s := range a.sessions {
		s.Close(ctx)
	}
}

// Status pings the service and reports each tool session's state.
func (a *App) Status(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.client.Ping(pingCtx)
	cancel()

	if err != nil {
		printlnFn("service:", a.config.ServerAddr, "— offline:", api.Reason(err))
	} else {
		printlnFn("service:", a.config.ServerAddr, "— online")
	}

	for _, tool := range []session.Tool{session.ToolAnalysis, session.ToolSimilarity, session.ToolCrop} {
		snap := a.sessions[tool].Snapshot()
		printlnFn(" ", string(tool)+":", string(snap.Status), "files:", len(snap.Files))
	}
	return err
}

// Reset returns the named tool's session to its initial state, or all three
// when tool is empty.
func (a *App) Reset(ctx context.Context, tool string) error {
	if tool == "" {
		for _, s := range a.sessions {
			s.Reset(ctx)
		}
		printlnFn("all sessions reset")
		return nil
	}

	s, ok := a.sessions[session.Tool(tool)]
	if !ok {
		printlnFn("unknown tool:", tool, "(want analysis, similarity or crop)")
		return nil
	}
	s.Reset(ctx)
	printlnFn(tool, "session reset")
	return nil
}
