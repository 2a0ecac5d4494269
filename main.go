package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/nstehr/orrery/orrery-core/agent"
	"github.com/nstehr/orrery/orrery-core/config"
	"github.com/nstehr/orrery/orrery-core/ipc"
	"github.com/nstehr/orrery/orrery-core/planner"
	"github.com/nstehr/orrery/orrery-core/workers"
)

const banner = `
 ██████╗ ██████╗ ██████╗ ███████╗██████╗ ██╗   ██╗
██╔═══██╗██╔══██╗██╔══██╗██╔════╝██╔══██╗╚██╗ ██╔╝
██║   ██║██████╔╝██████╔╝█████╗  ██████╔╝ ╚████╔╝
██║   ██║██╔══██╗██╔══██╗██╔══╝  ██╔══██╗  ╚██╔╝
╚██████╔╝██║  ██║██║  ██║███████╗██║  ██║   ██║
 ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝   ╚═╝

Planetary Governor AI`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.Logging.Logger())

	fmt.Println(banner)

	slog.Info("starting orrery", "seed", cfg.AI.Seed, "seedFixed", cfg.AI.SeedFixed)

	// Compile once up front so a broken ladder fails at startup, not per connection.
	if _, err := planner.New(); err != nil {
		slog.Error("failed to build planner", "error", err)
		os.Exit(1)
	}

	socketPath := cfg.IPC.SocketPath

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(socketPath); err != nil {
		slog.Error("failed to clean up socket", "path", socketPath, "error", err)
		os.Exit(1)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		slog.Error("failed to listen on socket", "path", socketPath, "error", err)
		os.Exit(1)
	}
	defer listener.Close()
	defer os.Remove(socketPath)

	slog.Info("listening on domain socket", "path", socketPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			slog.Info("new connection accepted")
			go handleConn(conn, cfg)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}

// handleConn serves one realm session.
func handleConn(conn net.Conn, cfg *config.Config) {
	defer abortOnPanic(conn)

	engine, err := planner.New()
	if err != nil {
		slog.Error("failed to build planner", "error", err)
		conn.Close()
		return
	}
	c := ipc.NewConnection(conn, nil, cfg.IPC.CompressThreshold)
	a := agent.New(c, engine, cfg.AI.Seed)
	c.RegisterHandler(ipc.TypeHello, a.HandleHello)
	c.RegisterHandler(ipc.TypeTurn, a.HandleTurn)
	c.ReadLoop()
}

// abortOnPanic logs a planner panic with its full context, closes the session
// and panics again so the whole process stops.
func abortOnPanic(conn io.Closer) {
	r := recover()
	if r == nil {
		return
	}
	var v *workers.InvariantViolation
	if err, ok := r.(error); ok && errors.As(err, &v) {
		slog.Error("labor invariant violated",
			"planet", v.Planet, "owner", v.Owner, "race", v.Race, "branch", v.Branch,
			"want", v.Want, "got", v.Got, "allocation", v.Allocation, "buildings", v.Buildings)
	} else {
		slog.Error("session panicked", "panic", r)
	}
	conn.Close()
	panic(r)
}
