package run

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xhd2015/go-dom-tui/charm"
	domlog "github.com/xhd2015/go-dom-tui/log"
	"github.com/xhd2015/habits/api"
	"github.com/xhd2015/habits/app"
	"github.com/xhd2015/habits/data"
	"github.com/xhd2015/habits/internal/config"
	"github.com/xhd2015/habits/internal/process"
	"github.com/xhd2015/habits/log"
	"github.com/xhd2015/habits/models"
	"github.com/xhd2015/less-gen/flags"
)

const help = `
habits - a terminal habit browser

Usage: habits [OPTIONS]
       habits <cmd> [OPTIONS]

Available sub commands:
  list

Options:
  --data <file.json>               habit list as a response-envelope JSON document (default: built-in sample)
  --show-archived                  include archived habits
  --debug-log <file>               enable debug logging to specified file
  --show-path                      print the config dir and exit
  -h,--help                        show this help message

Examples:
  habits                           browse the built-in sample list
  habits --data habits.json        browse habits from an envelope document
  habits list --include "run"      print habits containing "run"
`

func Main(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "list":
			return handleList(args[1:])
		}
	}

	var dataFile string
	var showArchived bool
	var debugLogFile string
	var showPath bool

	args, err := flags.String("--data", &dataFile).
		Bool("--show-archived", &showArchived).
		String("--debug-log", &debugLogFile).
		Bool("--show-path", &showPath).
		Help("-h,--help", help).
		Parse(args)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra arguments: %s", strings.Join(args, " "))
	}

	if err := config.LoadEnv(); err != nil {
		return err
	}
	// stack traces on error envelopes stay off in production
	api.SetStackTraces(!config.IsProduction())

	confDir, err := config.GetConfigDir()
	if err != nil {
		return err
	}

	if showPath {
		fmt.Println(confDir)
		return nil
	}

	err = os.MkdirAll(confDir, 0755)
	if err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := log.Init(confDir); err != nil {
		return err
	}

	conf, err := data.LoadConfig()
	if err != nil {
		return err
	}
	if conf != nil && conf.RunningPID > 0 {
		alive, _ := process.Alive(conf.RunningPID)
		if alive {
			return fmt.Errorf("habits is already running with PID %d", conf.RunningPID)
		}
	}
	if conf == nil {
		conf = &models.Config{}
	}
	conf.RunningPID = os.Getpid()
	err = data.SaveConfig(conf)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	var openedFile *os.File
	if debugLogFile != "" {
		file, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open debug log file: %w", err)
		}
		openedFile = file
		domlog.SetLogger(domlog.NewFileLogger(file))
	}

	result, err := data.Load(dataFile)
	if err != nil {
		return err
	}
	habits, err := result.Get()
	if err != nil {
		// a failure envelope from the producer
		return fmt.Errorf("failed to load habits: %w", err)
	}

	source := "sample"
	if dataFile != "" {
		source = filepath.Base(dataFile)
	}
	log.Infof(context.Background(), "loaded %d habits from %s", len(habits), source)

	var p *tea.Program
	appState := app.State{
		Habits:        models.NewHabitViews(habits),
		Focus:         models.FocusState{Focused: true},
		SelectedIndex: -1,
		SliceStart:    -1,
		ShowArchived:  showArchived,
		StatusBar: app.StatusBar{
			Source: source,
		},
		Refresh: func() {
			p.Send(cursor.Blink())
		},
		Dispatch: func(fn func()) {
			p.Send(applyMsg(fn))
		},
	}
	if meta := result.Meta(); meta != nil {
		appState.Pagination = meta.Pagination
	}
	appState.Notifier = app.NewStatusBarNotifier(&appState)
	if conf.LastQuery != "" {
		appState.SetQuery(conf.LastQuery)
	}

	model := &Model{
		app: charm.NewCharmApp(&appState, app.App),
	}

	appState.Quit = func() {
		model.quit = true
		conf.LastQuery = appState.Query
		conf.RunningPID = 0
		data.SaveConfig(conf)
		if openedFile != nil {
			openedFile.Close()
		}
	}

	p = tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

type Model struct {
	quit bool
	app  *charm.CharmApp[app.State]
}

// applyMsg carries a state mutation from a background goroutine onto
// the program's event loop
type applyMsg func()

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if apply, ok := msg.(applyMsg); ok {
		apply()
		msg = cursor.Blink()
	}
	m.app.Update(msg)
	if m.quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	return m.app.Render()
}
