package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/intent-apparatus/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	root := cli.NewRootCmd(cli.Options{Verbose: isVerbose()})

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("APPARATUS_DEBUG"), "1") || strings.EqualFold(os.Getenv("APPARATUS_DEBUG"), "true")
}
