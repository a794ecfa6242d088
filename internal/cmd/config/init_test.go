package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcgen/cli/internal/cmdtypes"
	"github.com/rcgen/cli/internal/config"
	oerrors "github.com/rcgen/cli/internal/errors"
	"github.com/rcgen/cli/internal/testutil"
)

func TestNewConfigInitCmd(t *testing.T) {
	cmd := NewConfigInitCmd(&cmdtypes.GlobalConfig{})

	assert.Equal(t, "init", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("force"))
}

func TestConfigInit_CreatesFile(t *testing.T) {
	buf := testutil.CaptureOutput(t)
	path := filepath.Join(t.TempDir(), ".rcg", "config.yaml")

	cmd := NewConfigInitCmd(&cmdtypes.GlobalConfig{ConfigPath: path})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, path)
	assert.Contains(t, buf.String(), "Configuration initialized")

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultComponentsPath, cfg.ComponentsPath)
	assert.Equal(t, config.DefaultLanguage, cfg.Language)
	assert.Equal(t, config.DefaultStylesheet, cfg.Stylesheet)
	assert.True(t, cfg.TemplatesEnabled())
}

func TestConfigInit_SecurePermissions(t *testing.T) {
	testutil.CaptureOutput(t)
	path := filepath.Join(t.TempDir(), ".rcg", "config.yaml")

	cmd := NewConfigInitCmd(&cmdtypes.GlobalConfig{ConfigPath: path})
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	fileInfo, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	testutil.CaptureOutput(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: jsx\n"), 0o600))

	t.Run("fails without force", func(t *testing.T) {
		cmd := NewConfigInitCmd(&cmdtypes.GlobalConfig{ConfigPath: path})
		cmd.SetArgs([]string{})

		err := cmd.Execute()

		require.Error(t, err)
		assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "language: jsx\n", string(data))
	})

	t.Run("overwrites with force", func(t *testing.T) {
		cmd := NewConfigInitCmd(&cmdtypes.GlobalConfig{ConfigPath: path})
		cmd.SetArgs([]string{"--force"})

		require.NoError(t, cmd.Execute())

		cfg, err := config.NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultLanguage, cfg.Language)
	})
}

func TestConfigInit_UnreadablePath(t *testing.T) {
	testutil.CaptureOutput(t)
	parent := filepath.Join(t.TempDir(), "rcg")
	require.NoError(t, os.WriteFile(parent, []byte("not a directory"), 0o600))
	path := filepath.Join(parent, "config.yaml")

	cmd := NewConfigInitCmd(&cmdtypes.GlobalConfig{ConfigPath: path})
	cmd.SetArgs([]string{"--force"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "checking")
}
