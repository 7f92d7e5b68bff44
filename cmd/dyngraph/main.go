package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/config"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/logging"
)

func main() {
	var fileFlag, logLevel, envFile string
	flag.StringVar(&fileFlag, "file", "", "Path to a channel table (.csv, .txt, .xlsx, .json)")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&envFile, "env", config.DefaultEnvFile, "Optional dotenv file")
	flag.Parse()

	env, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
	}
	if logLevel == "" {
		logLevel = env.LogLevel
	}
	if logLevel != "" && !logging.SetLevel(logLevel) {
		fmt.Fprintf(os.Stderr, "unknown log level %q, using %s\n", logLevel, logging.GetLevel())
	}

	a := app.NewWithID("com.psse.dyngraph")
	w := a.NewWindow("PSSE Dynamic Simulation Grapher")
	w.Resize(fyne.NewSize(1280, 820))

	state := newUIState(a, w, env)
	w.SetContent(buildContent(state))
	buildMenus(state)
	loadPrefs(state)
	if fileFlag != "" {
		state.filePath = fileFlag
	}
	if state.filePath != "" {
		openDataset(state, state.filePath)
	}
	w.ShowAndRun()
}
