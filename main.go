package main

import (
	"os"

	"github.com/llehouerou/carfilter/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
