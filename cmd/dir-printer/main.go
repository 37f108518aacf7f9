package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bethropolis/dir-printer/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
