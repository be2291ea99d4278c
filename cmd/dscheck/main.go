// Command dscheck cross-validates the lvlathds data structure
// implementations on random input. Run "dscheck list" for the checks.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvlathds/internal/dscheck"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	dscheck.Execute(ctx, version)
}
