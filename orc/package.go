package orc

import (
	log "github.com/sirupsen/logrus"
)

const (
	Magic = "ORC"

	// how much of the tail to fetch before the postscript is known
	directorySizeGuess = 16 * 1024

	defaultCompressionBlockSize = 256 * 1024
)

var logger = log.New()

func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}
