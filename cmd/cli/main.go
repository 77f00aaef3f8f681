package main

import (
	"github.com/garrastaldea/bolilla/internal/cli"
)

func main() {
	cli.Execute()
}
