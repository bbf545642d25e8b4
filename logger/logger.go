// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogger sets the global log level and writes logs to every
// stream. Stdout is rendered with the console writer.
func ConfigureLogger(level zerolog.Level, streams ...io.Writer) {
	writers := make([]io.Writer, len(streams))
	for i, stream := range streams {
		if stream == os.Stdout || stream == os.Stderr {
			writers[i] = zerolog.ConsoleWriter{Out: stream, TimeFormat: time.RFC3339}
			continue
		}
		writers[i] = stream
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
}
