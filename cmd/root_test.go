package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"task", "board", "register", "whoami", "signout"})
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.SilenceUsage)
}
