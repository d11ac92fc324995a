package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/atomicstack/ams/internal/app"
	"github.com/atomicstack/ams/internal/config"
	"github.com/atomicstack/ams/internal/logging"
	"github.com/atomicstack/ams/internal/logging/events"
	"golang.org/x/term"
)

// Version is injected at build time via -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	runtimeCfg := config.MustLoad()
	if runtimeCfg.Version {
		fmt.Printf("ams %s\n", Version)
		return
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload records how ams was invoked and which tmux server and
// terminal it found.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"command": string(cfg.Command),
		"target":  cfg.Target,
		"flags":   flags,
		"config":  cfg,
		"version": Version,
		"logPath": logging.Path(),
		"tmux":    detectTmux(cfg.App.SocketPath, os.Getenv),
		"tty":     inspectTerminals(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

// tmuxContext describes the server ams will talk to.
type tmuxContext struct {
	Socket       string `json:"socket"`
	SocketSource string `json:"socket_source"`
	InsideTmux   bool   `json:"inside_tmux"`
	Client       string `json:"client,omitempty"`
	Binary       string `json:"binary,omitempty"`
	BinaryError  string `json:"binary_error,omitempty"`
}

// detectTmux resolves the socket the same way tmux does: an explicit -S wins,
// then the server of the enclosing client ($TMUX is "socket,pid,session"),
// then tmux's default.
func detectTmux(socket string, getenv func(string) string) tmuxContext {
	ctx := tmuxContext{Socket: socket, SocketSource: "flag"}
	client := strings.TrimSpace(getenv("TMUX"))
	if client != "" {
		ctx.InsideTmux = true
		ctx.Client = client
	}
	if socket == "" {
		if client != "" {
			ctx.Socket = strings.SplitN(client, ",", 2)[0]
			ctx.SocketSource = "$TMUX"
		} else {
			ctx.SocketSource = "default"
		}
	}
	if path, err := exec.LookPath("tmux"); err == nil {
		ctx.Binary = path
	} else {
		ctx.BinaryError = err.Error()
	}
	return ctx
}

type terminalState struct {
	Stream     string `json:"stream"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// inspectTerminals reports which standard streams are terminals; the selector
// needs stdin and stdout to be one.
func inspectTerminals() []terminalState {
	streams := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	states := make([]terminalState, len(streams))
	for i, f := range streams {
		states[i] = terminalState{Stream: names[i]}
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		states[i].IsTerminal = true
		width, height, err := term.GetSize(fd)
		if err != nil {
			states[i].Error = err.Error()
			continue
		}
		states[i].Width, states[i].Height = width, height
	}
	return states
}
