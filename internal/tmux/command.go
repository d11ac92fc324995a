package tmux

import (
	"os"
	"os/exec"
	"strings"
)

type commander interface {
	Run() error
	Output() ([]byte, error)
}

type realCommander struct {
	cmd *exec.Cmd
}

func (r realCommander) Run() error {
	return r.cmd.Run()
}

func (r realCommander) Output() ([]byte, error) {
	return r.cmd.Output()
}

var (
	tmuxBinary = "tmux"

	runExecCommand = func(name string, args ...string) commander {
		return realCommander{cmd: exec.Command(name, args...)}
	}

	// runInteractiveCommand hands the terminal to the child process.
	runInteractiveCommand = func(name string, args ...string) commander {
		cmd := exec.Command(name, args...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		return realCommander{cmd: cmd}
	}

	insideTmux = func() bool {
		return strings.TrimSpace(os.Getenv("TMUX")) != ""
	}
)

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}

// exactTarget stops tmux from prefix-matching a different session.
func exactTarget(name string) string {
	return "=" + name
}
