// SPDX-License-Identifier: MIT

package main

import (
	"github.com/sirupsen/logrus"
)

// Input holds the flag values of one invocation.
type Input struct {
	verbose     bool
	configPath  string
	inPath      string
	outPath     string
	dotPath     string
	metricsFile string

	logger *logrus.Logger
}

// log returns the component-less base entry.
func (i *Input) log() *logrus.Entry {
	if i.logger == nil {
		i.logger = logrus.StandardLogger()
	}

	return logrus.NewEntry(i.logger)
}

// stdio reports whether path names standard input or output.
func stdio(path string) bool {
	return path == "" || path == "-"
}
