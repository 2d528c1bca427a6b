package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/pthm/speechstyle/internal/cmd"
	"github.com/pthm/speechstyle/internal/version"
)

func main() {
	err := fang.Execute(context.Background(), cmd.RootCmd,
		fang.WithVersion(version.Short()),
		fang.WithCommit(version.Commit),
	)
	if err != nil {
		os.Exit(1)
	}
}
