// Package main enables kindof to execute as a CLI tool
package main

import (
	"os"

	"github.com/pouriyajamshidi/kindof/internal/app"
)

func main() {
	os.Exit(app.Run())
}
