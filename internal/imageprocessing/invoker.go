package imageprocessing

import (
	"fmt"
	"image"
	"log/slog"
	"time"
)

// CommandInvoker executes a sequence of commands on an image
type CommandInvoker struct {
	commands []Command
}

// NewCommandInvoker creates a new command invoker
func NewCommandInvoker(commands []Command) *CommandInvoker {
	return &CommandInvoker{
		commands: commands,
	}
}

// Execute applies all commands in sequence to the image.
// The first failing command aborts the sequence.
func (i *CommandInvoker) Execute(img *image.NRGBA) (*image.NRGBA, error) {
	start := time.Now()

	if len(i.commands) == 0 {
		slog.Debug("no commands to execute, returning original image")
		return img, nil
	}

	current := img
	for idx, command := range i.commands {
		commandStart := time.Now()
		in := current.Bounds()

		slog.Debug("executing command",
			"index", idx,
			"command_name", command.Name(),
			"input_width", in.Dx(),
			"input_height", in.Dy())

		processed, err := command.Execute(current)
		if err != nil {
			slog.Error("command execution failed",
				"index", idx,
				"command_name", command.Name(),
				"error", err)
			return nil, fmt.Errorf("command %s (index %d) failed: %w", command.Name(), idx, err)
		}

		out := processed.Bounds()
		slog.Debug("command completed",
			"index", idx,
			"command_name", command.Name(),
			"duration_ms", time.Since(commandStart).Milliseconds(),
			"output_width", out.Dx(),
			"output_height", out.Dy())

		current = processed
	}

	slog.Debug("image processing pipeline completed",
		"total_duration_ms", time.Since(start).Milliseconds(),
		"command_count", len(i.commands))

	return current, nil
}

// NewCommands creates the configured commands from the default registry, in order
func NewCommands(commandConfigs []CommandConfig) ([]Command, error) {
	commands := make([]Command, 0, len(commandConfigs))
	for i, config := range commandConfigs {
		command, err := DefaultRegistry.Create(config.Name, config.Params)
		if err != nil {
			return nil, fmt.Errorf("failed to create command at index %d: %w", i, err)
		}
		commands = append(commands, command)
	}
	return commands, nil
}
