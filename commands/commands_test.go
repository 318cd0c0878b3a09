package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tminor/lspmyql/catalog"
)

func TestLoadConfigDefaults(t *testing.T) {
	command := newRootCommand()
	require.NoError(t, command.ParseFlags(nil))

	config, err := loadConfig(command)
	require.NoError(t, err)
	assert.Equal(t, defaultCatalogPath(), config.Catalog)
	assert.Equal(t, filepath.Base(config.Catalog), defaultCatalogName)
	assert.Equal(t, "", config.Log)
	assert.Equal(t, 0, config.Verbose)
	assert.Equal(t, "", config.TCP)
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lspmyql.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: file.json\nlog: file.log\ntcp: \":9000\"\n"), 0644))
	t.Setenv("LSPMYQL_LOG", "env.log")

	command := newRootCommand()
	require.NoError(t, command.ParseFlags([]string{"--config", path, "--catalog", "flag.json", "-vv"}))

	config, err := loadConfig(command)
	require.NoError(t, err)
	assert.Equal(t, "flag.json", config.Catalog)
	assert.Equal(t, "env.log", config.Log)
	assert.Equal(t, ":9000", config.TCP)
	assert.Equal(t, 2, config.Verbose)
}

func TestLoadConfigMissingFile(t *testing.T) {
	command := newRootCommand()
	require.NoError(t, command.ParseFlags([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")}))

	_, err := loadConfig(command)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestVerbosityLevel(t *testing.T) {
	assert.Equal(t, logging.WARNING, verbosityLevel(0))
	assert.Equal(t, logging.INFO, verbosityLevel(1))
	assert.Equal(t, logging.DEBUG, verbosityLevel(2))
	assert.Equal(t, logging.DEBUG, verbosityLevel(5))
}

func TestVersionCommand(t *testing.T) {
	command := newRootCommand()
	var out bytes.Buffer
	command.SetOut(&out)
	command.SetArgs([]string{"version"})

	require.NoError(t, command.Execute())
	assert.Equal(t, toolName+" "+version+"\n", out.String())
}

// restoreLogging puts the process-wide backend back on stderr and closes a
// log file opened by configureLogging.
func restoreLogging(t *testing.T) {
	t.Cleanup(func() {
		logging.SetBackend(logging.NewLogBackend(os.Stderr, "", 0))
		if logFile != nil {
			logFile.Close()
			logFile = nil
		}
	})
}

func TestInvalidCatalogStopsStartup(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "lspmyql.log")
	restoreLogging(t)

	command := newRootCommand()
	command.SetArgs([]string{"--catalog", filepath.Join(t.TempDir(), "missing.json"), "--log", logPath})

	err := command.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrInvalidCatalog))

	_, err = os.Stat(logPath)
	assert.NoError(t, err)
	assert.NotNil(t, logFile)
}
