package main

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"migrate", "seed-plans", "reconcile", "expire", "create-admin"}, names)
}

func TestCreateAdmin_RequiresFlags(t *testing.T) {
	root := newRootCommand()
	root.SetArgs([]string{"create-admin"})
	root.SetOut(&strings.Builder{})
	root.SetErr(&strings.Builder{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "email", "name" not set`)
}

func TestReadPassword_FromStdin(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("stdin is a terminal")
	}
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("s3cret-password\nignored\n"))

	pw, err := readPassword(cmd)
	require.NoError(t, err)
	assert.Equal(t, "s3cret-password", pw)
}
