// Command server runs the habit coaching HTTP API until it receives
// SIGINT or SIGTERM.
//
// Flags:
//
//	--help-env  print the supported environment variables and exit
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // user timezones must resolve on minimal images

	"github.com/heartmarshall/habitcoach-backend/internal/app"
	"github.com/heartmarshall/habitcoach-backend/internal/config"
)

func main() {
	helpEnv := flag.Bool("help-env", false, "print the supported environment variables")
	flag.Parse()

	if *helpEnv {
		usage, err := config.Usage()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(usage)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
