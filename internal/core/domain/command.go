package domain

import "strings"

// Command is an external command invocation.
type Command struct {
	// Args is the argv, including the program as Args[0].
	Args []string

	// Env holds extra "KEY=VALUE" entries appended to the inherited environment.
	Env []string

	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// NewCommand creates a Command from a program and its arguments.
func NewCommand(program string, args ...string) Command {
	return Command{Args: append([]string{program}, args...)}
}

// WithEnv returns a copy of the command with extra environment entries.
func (c Command) WithEnv(env ...string) Command {
	c.Env = append(append([]string(nil), c.Env...), env...)
	return c
}

// String renders the argv for logs and error metadata.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}
