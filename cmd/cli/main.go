package main

import (
	"github.com/ao3101/eurostat/internal/cli"
)

func main() {
	cli.Execute()
}
