package main

import (
	"rsvp-manager/core/logger"
	"rsvp-manager/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
