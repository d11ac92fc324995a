package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atomicstack/ams/internal/config"
	"github.com/atomicstack/ams/internal/logging/events"
	"github.com/atomicstack/ams/internal/tmux"
	"github.com/atomicstack/ams/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Repository is the session store the commands operate on.
type Repository interface {
	ListSessions() ([]tmux.Session, error)
	GetSession(name string) (tmux.Session, error)
	CreateSession(name, directory string) error
	KillSession(name string) error
	AttachSession(name string) error
}

// Runner executes one command against a repository.
type Runner struct {
	repo Repository
	out  io.Writer
	now  func() time.Time

	// runProgram drives the interactive selector until it quits.
	runProgram func(*ui.Model) error
}

// New returns a runner printing to out.
func New(repo Repository, out io.Writer) *Runner {
	return &Runner{
		repo:       repo,
		out:        out,
		now:        time.Now,
		runProgram: runTeaProgram,
	}
}

// Run executes the command selected in cfg against the configured tmux server.
func Run(cfg config.Config) error {
	return New(tmux.NewRepository(cfg.App.SocketPath), os.Stdout).Run(cfg)
}

// Run dispatches cfg.Command.
func (r *Runner) Run(cfg config.Config) error {
	events.App.Command(string(cfg.Command), map[string]interface{}{
		"target":    cfg.Target,
		"directory": cfg.Directory,
	})
	var err error
	switch cfg.Command {
	case config.CommandTUI, "":
		err = r.runSelector(cfg.App)
	case config.CommandList:
		err = r.runList()
	case config.CommandAttach:
		err = r.runAttach(cfg.Target)
	case config.CommandNew:
		err = r.runNew(cfg.Target, cfg.Directory)
	case config.CommandKill:
		err = r.runKill(cfg.Target)
	default:
		err = fmt.Errorf("unknown command %q", cfg.Command)
	}
	events.App.Exit(string(cfg.Command), err)
	return err
}

func (r *Runner) runSelector(cfg config.App) error {
	name, ok, err := r.selectSession(cfg)
	if err != nil || !ok {
		return err
	}
	return r.repo.AttachSession(name)
}

// selectSession runs the interactive selector and returns the confirmed
// session, if any.
func (r *Runner) selectSession(cfg config.App) (string, bool, error) {
	model := ui.NewModel(r.repo, cfg.Width, cfg.Height, cfg.ShowFooter)
	model.Refresh()
	if err := r.runProgram(model); err != nil {
		return "", false, err
	}
	name, ok := model.Selected()
	return name, ok, nil
}

func runTeaProgram(model *ui.Model) error {
	return runProgramWith(model, tea.WithAltScreen())
}

// runProgramWith runs the selector with the tty mode guarded. Bubble Tea
// recovers panics in Update and View and reports them as a killed program,
// so a panic is surfaced as an error once the terminal is restored.
func runProgramWith(model *ui.Model, opts ...tea.ProgramOption) error {
	guard := acquireTerminal(os.Stdin)
	defer guard.restore()

	_, err := tea.NewProgram(model, opts...).Run()
	return programResult(err)
}

// programResult treats an interrupt or kill as a quiet exit.
func programResult(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrProgramPanic):
		return fmt.Errorf("session selector crashed: %w", err)
	case errors.Is(err, tea.ErrProgramKilled), errors.Is(err, tea.ErrInterrupted):
		return nil
	default:
		return err
	}
}

// runAttach checks the session exists before handing over the terminal, so an
// unknown name is reported with suggestions instead of tmux's own message.
func (r *Runner) runAttach(name string) error {
	if _, err := r.repo.GetSession(name); err != nil {
		return r.withSuggestions(name, err)
	}
	if err := r.repo.AttachSession(name); err != nil {
		return r.withSuggestions(name, err)
	}
	return nil
}

func (r *Runner) runNew(name, directory string) error {
	if err := r.repo.CreateSession(name, directory); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Created session: %s\n", name)
	return nil
}

func (r *Runner) runKill(name string) error {
	if err := r.repo.KillSession(name); err != nil {
		return r.withSuggestions(name, err)
	}
	fmt.Fprintf(r.out, "Killed session: %s\n", name)
	return nil
}
