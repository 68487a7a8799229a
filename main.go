package main

import (
	"os"

	"github.com/rs/zerolog/log"

	cmd "limitbook/cmd/limitbook"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("limitbook exited with error")
		os.Exit(1)
	}
}
