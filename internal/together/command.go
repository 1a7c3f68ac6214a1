// SPDX-License-Identifier: AGPL-3.0-or-later

package together

import (
	"os"
	"os/exec"
)

// Command is the mutable surface Signoff needs from an outgoing command:
// set one environment variable, append one argument.
type Command interface {
	Setenv(key, value string)
	AppendArg(arg string)
}

// WrapCmd adapts an exec.Cmd to the Command interface.
func WrapCmd(cmd *exec.Cmd) Command {
	return &execCommand{cmd: cmd}
}

type execCommand struct {
	cmd *exec.Cmd
}

// Setenv appends key=value to the command's environment, seeding it with the
// parent environment first since a non-nil Env stops inheriting.
func (c *execCommand) Setenv(key, value string) {
	if c.cmd.Env == nil {
		c.cmd.Env = os.Environ()
	}
	c.cmd.Env = append(c.cmd.Env, key+"="+value)
}

func (c *execCommand) AppendArg(arg string) {
	c.cmd.Args = append(c.cmd.Args, arg)
}
