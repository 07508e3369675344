package main

import (
	"log"

	"github.com/toolver/toolver/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
