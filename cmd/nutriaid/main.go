package main

import (
	"log"

	"github.com/nutriai/nutriai-api/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
