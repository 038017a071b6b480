// SPDX-License-Identifier: MIT

// Command hfield inspects, converts, samples, generates and watches height
// fields stored as text dumps or 8-bit greyscale images.
//
// Settings come from HFIELD_ZSCALE, HFIELD_LOG_PATH and HFIELD_LOG_MAX_MB,
// optionally loaded from a .env file; subcommand flags override them.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Println("Error loading .env file:", err)
	}
	cfg, err := loadConfig(os.LookupEnv)
	if err != nil {
		log.Fatal("Error loading config: " + err.Error())
	}
	sink := setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, os.Args[1:], cfg, os.Stdout)
	stop()
	sink.Close()

	os.Exit(exitCode(err))
}

// exitCode maps run errors to the process status: 0 ok or -h, 2 usage, 1 otherwise.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		log.Println(err)
		return 2
	default:
		log.Println(err)
		return 1
	}
}
