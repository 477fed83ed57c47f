// Command corrector is the interactive front end of the sentence
// corrector. Without a subcommand it lists the vocabulary, reads one
// line and prints the corrected paragraph.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Send()
		os.Exit(1)
	}
}
