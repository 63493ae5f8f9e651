package main

import (
	"github.com/memeparty/server/internal/app"
	"github.com/memeparty/server/internal/config"
)

func main() {
	app.Go(config.Load())
}
