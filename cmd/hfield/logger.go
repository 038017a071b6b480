// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log"
	"os"

	"github.com/natefinch/lumberjack"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func createLogger(cfg config) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename: cfg.LogPath,
		MaxSize:  cfg.LogMaxMB,
		Compress: true,
	}
}

// setupLogging sends the standard logger to stdout and, unless disabled, to
// the rotating log file. The returned closer flushes the file sink.
func setupLogging(cfg config) io.Closer {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if cfg.LogPath == "" {
		log.SetOutput(os.Stdout)
		return nopCloser{}
	}
	lj := createLogger(cfg)
	log.SetOutput(io.MultiWriter(lj, os.Stdout))

	return lj
}
