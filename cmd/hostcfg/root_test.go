package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hostcfg"
	"github.com/xy-planning-network/hostcfg/ranger"
)

func TestServeCmd(t *testing.T) {
	// Arrange
	t.Setenv("PORT", "9999")
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("RESOURCES_DIR", "")

	var actual ranger.Config
	run := func(cfg ranger.Config) error {
		actual = cfg
		return nil
	}

	tcs := []struct {
		name      string
		args      []string
		port      string
		env       hostcfg.Environment
		resources string
	}{
		{"Env-Only", []string{"serve"}, "9999", hostcfg.Staging, ranger.DefaultResourcesDir},
		{"Flags-Override", []string{"serve", "--port", ":7000", "--env", "testing", "--resources", "words"}, ":7000", hostcfg.Testing, "words"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			cmd := newRootCmd(run)
			cmd.SetArgs(tc.args)
			cmd.SetOut(new(bytes.Buffer))

			// Act
			err := cmd.Execute()

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.port, actual.Port)
			require.Equal(t, tc.env, actual.Env)
			require.Equal(t, tc.resources, actual.ResourcesDir)
		})
	}
}

func TestServeCmdError(t *testing.T) {
	// Arrange
	expected := errors.New("boom")
	cmd := newRootCmd(func(ranger.Config) error { return expected })
	cmd.SetArgs([]string{"serve"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	// Act
	err := cmd.Execute()

	// Assert
	require.ErrorIs(t, err, expected)

	// Arrange
	cmd = newRootCmd(func(ranger.Config) error { return nil })
	cmd.SetArgs([]string{"serve", "extra"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	// Act
	err = cmd.Execute()

	// Assert
	require.NotNil(t, err)
}
