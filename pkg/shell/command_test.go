package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
		ok    bool
	}{
		{"1", CmdCreateFolder, true},
		{"4", CmdListAll, true},
		{"10", CmdAccount, true},
		{"13", CmdQuit, true},
		{"0", CmdInvalid, false},
		{"14", CmdInvalid, false},
		{"-1", CmdInvalid, false},
		{"", CmdInvalid, false},
		{"exit", CmdInvalid, false},
		{"1.0", CmdInvalid, false},
		{"04", CmdInvalid, false},
		{"+4", CmdInvalid, false},
		{"013", CmdInvalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCommand(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestCommandsAreNumberedInOrder(t *testing.T) {
	for i, cmd := range Commands {
		assert.Equal(t, i+1, int(cmd))
		assert.NotEqual(t, "Invalid", cmd.Label())
		assert.NotEqual(t, "invalid", cmd.Action())
	}
}

func TestParseAccountAction(t *testing.T) {
	assert.Equal(t, acctDeposit, parseAccountAction("1"))
	assert.Equal(t, acctBack, parseAccountAction("5"))
	assert.Equal(t, acctInvalid, parseAccountAction("6"))
	assert.Equal(t, acctInvalid, parseAccountAction("x"))
	assert.Equal(t, acctInvalid, parseAccountAction("01"))
	assert.Equal(t, acctInvalid, parseAccountAction("+2"))
}
