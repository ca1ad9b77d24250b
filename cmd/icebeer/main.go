package main

import (
	"os"

	"github.com/fchimpan/ice-cold-beer/cmd"
)

func main() {
	root := cmd.NewRootCmd(cmd.DefaultDeps())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
