// Command trailsh is a line-oriented front-end for the trailkit widgets.
// Every command that changes state re-renders the breadcrumb and rating
// from scratch, the same render-driven loop the TUI front-ends use.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"trailkit/nav"
	"trailkit/theme"
)

var (
	colorPrompt = color.New(color.FgCyan)
	colorError  = color.New(color.FgRed)
	colorInfo   = color.New(color.FgYellow)
	colorChild  = color.New(color.FgBlue)
	colorDim    = color.New(color.Faint)
)

// Config points the shell at its inputs.
type Config struct {
	Tree  string `yaml:"tree"`  // navigation tree JSON file
	Theme string `yaml:"theme"` // optional theme YAML file
}

// loadConfig reads the shell configuration from a YAML file.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Tree == "" {
		return nil, fmt.Errorf("config missing required field: tree")
	}
	return &cfg, nil
}

// termWidth returns the terminal width, or 0 when stdout is not a tty.
func termWidth() int {
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			return w
		}
	}
	return 0
}

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: trailsh CONFIG_FILE")
		fmt.Println("Example: trailsh config.yaml")
		os.Exit(1)
	}

	configPath := os.Args[1]
	if !strings.HasSuffix(configPath, ".yaml") && !strings.HasSuffix(configPath, ".yml") {
		fmt.Println("Usage: trailsh CONFIG_FILE")
		fmt.Println("Example: trailsh config.yaml")
		os.Exit(1)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	treeData, err := os.ReadFile(cfg.Tree)
	if err != nil {
		fmt.Printf("Error reading tree file: %v\n", err)
		os.Exit(1)
	}
	root, err := nav.ParseTree(treeData)
	if err != nil {
		fmt.Printf("Error parsing tree file: %v\n", err)
		os.Exit(1)
	}

	th := theme.Default()
	if cfg.Theme != "" {
		th, err = theme.Load(cfg.Theme)
		if err != nil {
			fmt.Printf("Error loading theme: %v\n", err)
			os.Exit(1)
		}
	}

	sh := NewShell(root, th)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            sh.prompt(),
		HistoryFile:       os.ExpandEnv("$HOME/.trailsh_history"),
		AutoComplete:      sh.completer(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		HistoryLimit:      1000,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Println("Type 'help' for commands")
	sh.render()

	for {
		rl.SetPrompt(sh.prompt())

		line, err := rl.Readline()
		if err != nil {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" {
			break
		}

		if err := sh.execute(cmd, args); err != nil {
			colorError.Printf("Error: %v\n", err)
		}
	}
}
