package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/modcontent/cmd/modcontent"
	"github.com/arthur-debert/modcontent/pkg/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := modcontent.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		r := style.NewRenderer(nil, style.DetectFormat(os.Stderr))
		fmt.Fprintln(os.Stderr, r.Error(err.Error()))
		stop()
		os.Exit(1)
	}
}
