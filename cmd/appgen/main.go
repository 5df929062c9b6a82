package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Gamezxz/crypto-price-tracker/internal/commands"
	"github.com/Gamezxz/crypto-price-tracker/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.NewApp().ExecuteContext(ctx); err != nil {
		output.Error(err.Error())
		stop()
		os.Exit(1)
	}
}
