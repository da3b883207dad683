// Package logging provides the balancer's injectable logger. Every
// package that needs to log accepts a *zap.SugaredLogger instead of
// calling a global, and falls back to Nop() so importing this module
// never requires configuring a sink.
// coding=utf-8
// @Project : reaction-balancer
// @File    : logging.go
package logging

import "go.uber.org/zap"

// Nop returns a logger that discards everything -- the default for
// every driver.Option that isn't WithLogger.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// NewDevelopment returns a human-readable logger suitable for local runs
// and tests, mirroring the construction the retrieval pack's services use
// for their CLI entry points.
func NewDevelopment() (*zap.SugaredLogger, error) {
	l, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
