package main

import (
	"os"

	"github.com/0xalexb/sitecfg/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
