package main

import (
	"github.com/Praveenmail2him/Hyperfoil/internal/cli"
)

func main() {
	cli.Execute()
}
