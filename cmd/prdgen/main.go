package main

import (
	"log"

	"github.com/jerops/prd-generator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
