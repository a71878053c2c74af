package main

import (
	"github.com/MeKo-Tech/facewarm/cmd/facewarm/cmd"
)

func main() {
	cmd.Execute()
}
