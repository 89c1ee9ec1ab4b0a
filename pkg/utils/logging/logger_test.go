package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/crashstats/pkg/utils/logging"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]logging.Format{
		"":        logging.FormatAuto,
		"auto":    logging.FormatAuto,
		"console": logging.FormatConsole,
		"JSON":    logging.FormatJSON,
	}
	for input, expected := range cases {
		t.Run(input, func(t *testing.T) {
			format, err := logging.ParseFormat(input)
			gt.NoError(t, err).Required()
			gt.Equal(t, format, expected)
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := logging.ParseFormat("xml")
		gt.Error(t, err)
	})
}

func TestParseLogLevel(t *testing.T) {
	gt.Equal(t, logging.ParseLogLevel("debug"), slog.LevelDebug)
	gt.Equal(t, logging.ParseLogLevel("WARNING"), slog.LevelWarn)
	gt.Equal(t, logging.ParseLogLevel("error"), slog.LevelError)
	gt.Equal(t, logging.ParseLogLevel("verbose"), slog.LevelInfo)
}

func TestNewLoggerWritesJSONToNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(slog.LevelInfo, &buf)

	logger.Debug("hidden")
	logger.Info("fetched", "path", "/products/Firefox")

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record)).Required()
	gt.Equal(t, record["msg"], any("fetched"))
	gt.Equal(t, record["path"], any("/products/Firefox"))
}
