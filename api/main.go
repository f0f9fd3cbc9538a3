package main

import (
	"errors"
	"os"
)

// @title Vigilio Gateway API
// @version 1.0
// @description REST gateway for the Vigilio shareholder and fund data service.
// @host localhost:8080
// @BasePath /
func main() {
	if err := Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			newPrinter().Error("%v", err)
		}
		os.Exit(1)
	}
}
