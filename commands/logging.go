package commands

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"
	"github.com/tebeka/atexit"
)

var logFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} [%{module}] %{message}`)

// logFile is set when logging goes to a file rather than stderr.
var logFile *os.File

func verbosityLevel(verbosity int) logging.Level {
	switch {
	case verbosity <= 0:
		return logging.WARNING
	case verbosity == 1:
		return logging.INFO
	default:
		return logging.DEBUG
	}
}

// configureLogging never writes to stdout, which carries the protocol when
// serving over stdio.
func configureLogging(path string, verbosity int) error {
	var writer io.Writer = os.Stderr

	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrapf(err, "open log file %q", path)
		}
		atexit.Register(func() {
			file.Close()
		})
		logFile = file
		writer = file
	}

	backend := logging.NewBackendFormatter(logging.NewLogBackend(writer, "", 0), logFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(verbosityLevel(verbosity), "")
	logging.SetBackend(leveled)

	return nil
}
