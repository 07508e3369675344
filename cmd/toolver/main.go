package main

import (
	"github.com/toolver/toolver/pkg/cli"
)

func main() {
	cli.Execute()
}
