package main

import (
	"github.com/NVIDIA/analyzer-results/pkg/cli"
)

func main() {
	cli.Execute()
}
