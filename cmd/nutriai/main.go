package main

import (
	"github.com/nutriai/nutriai-api/pkg/cli"
)

func main() {
	cli.Execute()
}
