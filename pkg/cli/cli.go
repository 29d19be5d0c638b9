// Package cli implements the interactive command-line frontend.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"fitnote/local-app/pkg/adapter"
	"fitnote/local-app/pkg/bmi"
	"fitnote/local-app/pkg/log"
	"fitnote/local-app/pkg/model"
)

// CLI represents the command-line interface
type CLI struct {
	adapter *adapter.CLIAdapter
	rl      *readline.Instance
	stopCh  chan struct{}
	logger  *log.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(cliAdapter *adapter.CLIAdapter, logger *log.Logger) (*CLI, error) {
	if cliAdapter == nil {
		return nil, fmt.Errorf("adapter not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cliAdapter.PromptGet(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}

	return &CLI{
		adapter: cliAdapter,
		rl:      rl,
		stopCh:  make(chan struct{}),
		logger:  logger,
	}, nil
}

// Run starts the CLI and handles user input
func (c *CLI) Run() error {
	fmt.Println("Welcome to Fitnote! Type 'help' for the list of commands or 'exit' to quit.")

	for {
		select {
		case <-c.stopCh:
			return nil
		default:
		}

		c.rl.SetPrompt(c.adapter.PromptGet())
		line, err := c.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				fmt.Println("Use 'exit' or 'quit' to exit the program.")
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			return nil
		}
		if fields := strings.Fields(input); fields[0] == "help" {
			c.printHelp(fields[1:])
			continue
		}

		input, err = c.promptMissingPassword(input)
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return fmt.Errorf("failed to read password: %w", err)
		}

		out, err := c.adapter.ProcessInput(input)
		if err != nil {
			c.logger.Error(context.Background(), "Failed to process input", log.Fields{"error": err})
			fmt.Println("Error:", err)
			continue
		}
		c.render(out)
	}
}

// Stop signals the CLI to stop its main loop
func (c *CLI) Stop() {
	close(c.stopCh)
	c.rl.Close()
}

// Close releases the CLI resources.
func (c *CLI) Close() {
	c.rl.Close()
	c.adapter.Close()
}

// promptMissingPassword lets login and register be typed without the
// trailing password, which is then read without echo.
func (c *CLI) promptMissingPassword(input string) (string, error) {
	fields, err := adapter.Tokenize(input)
	if err != nil {
		return input, nil
	}
	if len(fields) < 2 || strings.ToLower(fields[0]) != "user" {
		return input, nil
	}

	op := strings.ToLower(fields[1])
	needsPassword := (op == "login" && len(fields) == 3) ||
		(op == "register" && len(fields) == 5)
	if !needsPassword {
		return input, nil
	}

	pw, err := c.rl.ReadPassword("password: ")
	if err != nil {
		return "", err
	}
	return input + " \"" + string(pw) + "\"", nil
}

// render prints a command outcome.
func (c *CLI) render(out model.Outcome) {
	if !out.Success {
		fmt.Println("Error:", out.Message)
		return
	}
	if out.Message != "" {
		fmt.Println(out.Message)
	}

	switch data := out.Data.(type) {
	case []model.Task:
		renderTasks(data)
	case model.Task:
		renderTask(data)
	case model.UserProfile:
		renderProfile(data)
	case bmi.Result:
		fmt.Printf("BMI: %s (%s)\n", data.BMI, data.Classification)
	}
}

func renderTasks(tasks []model.Task) {
	if len(tasks) == 0 {
		return
	}
	fmt.Printf("%-4s %-5s %-30s %s\n", "ID", "Done", "Name", "Due")
	for _, t := range tasks {
		fmt.Printf("%-4d %-5s %-30s %s\n", t.ID, doneMark(t.Done), t.Name, t.DueDate)
	}
}

func renderTask(t model.Task) {
	fmt.Printf("  #%d %s %s (due %s)\n", t.ID, doneMark(t.Done), t.Name, t.DueDate)
}

func renderProfile(p model.UserProfile) {
	fmt.Printf("  Name:  %s\n", p.Name)
	fmt.Printf("  Email: %s\n", p.Email)
	fmt.Printf("  Phone: %s\n", p.Phone)
}

func doneMark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
