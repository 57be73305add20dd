// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Fatalf(string, ...interface{})
	Warnf(string, ...interface{})
	Infof(string, ...interface{})
	Debugf(string, ...interface{})

	Error(...interface{})
	Fatal(...interface{})
	Warn(...interface{})
	Info(...interface{})
	Debug(...interface{})
}
