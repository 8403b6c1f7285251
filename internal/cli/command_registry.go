package cli

import (
	"io"
	"slices"
	"strings"

	"todo-tracker/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(out io.Writer, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	// Register all commands
	registry.Register("demo", NewDemoCommand(app))
	registry.Register("list", NewListCommand(app))
	registry.Register("stats", NewStatsCommand(app))
	registry.Register("export", NewExportCommand(app))
	registry.Register("import", NewImportCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Get returns the command registered under name
func (r *CommandRegistry) Get(name string) (Command, bool) {
	command, exists := r.commands[name]
	return command, exists
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(commandName string, out io.Writer, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(out, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return "usage: todo <" + strings.Join(names, "|") + "> [flags]"
}
