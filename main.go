package main

import (
	"os"

	"github.com/roomwatch/roomwatch/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
