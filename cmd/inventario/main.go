package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Inventario-client/internal/domain"
	"github.com/jhoicas/Inventario-client/internal/interfaces/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx, cli.Options{}, os.Args[1:])
	if err == nil {
		return
	}
	var reported *cli.ReportedError
	if !errors.As(err, &reported) {
		fmt.Fprintln(os.Stderr, "Error: "+domain.UserMessage(err))
	}
	stop()
	os.Exit(1)
}
