// SPDX-License-Identifier: MIT

// Command intarray applies one structural or reduction operation of the
// matrix package to a matrix document and prints the result.
//
//	intarray -i a.yaml diagonal --offset 1
//	echo '[[1,2],[3,4]]' | intarray -f json transpose
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/intarray/internal/config"
)

// newLogger returns a logger writing untimestamped, unquoted text to w.
func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})

	return log
}

func main() {
	log := newLogger(os.Stderr)
	if err := newRootCmd(log, config.Environ()).Execute(); err != nil {
		log.WithError(err).Error("intarray failed")
		os.Exit(1)
	}
}
