package main

import (
	"context"

	"github.com/dmitrymomot/inappdetect/internal/cli"
)

func main() {
	cli.Execute(context.Background())
}
