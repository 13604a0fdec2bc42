// SPDX-License-Identifier: Apache-2.0
/*
Copyright (C) 2024 The arcdps plugin-sdk-go Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/


// Package logging forwards log/slog records to arcdps. Each record is
// written as one null-terminated line to the arcdps log file and to the
// in-game log window.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"unsafe"
)

// Sink writes a null-terminated line. The line is only valid for the
// duration of the call.
type Sink func(line []byte)

// WriterSink returns a Sink writing lines to w, newline-terminated
// instead of null-terminated.
func WriterSink(w io.Writer) Sink {
	return func(line []byte) {
		n := len(line) - 1
		w.Write(append(line[:n:n], '\n'))
	}
}

// Level is the minimum level of the handler installed by Init.
var Level slog.LevelVar

// Handler is a slog.Handler formatting records as
//
//	<plugin name> - <file>:<line> <LEVEL>: <message> [key=value...]
//
// and writing them to every sink.
type Handler struct {
	name   string
	level  slog.Leveler
	sinks  []Sink
	attrs  []byte
	prefix string
	mu     *sync.Mutex
}

// NewHandler returns a handler for the plugin called name. A nil level
// means slog.LevelInfo.
func NewHandler(name string, level slog.Leveler, sinks ...Sink) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		name:  name,
		level: level,
		sinks: sinks,
		mu:    &sync.Mutex{},
	}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var file string
	var line int
	if r.PC != 0 {
		f, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		file, line = filepath.Base(f.File), f.Line
	}

	buf := make([]byte, 0, 256)
	buf = fmt.Appendf(buf, "%s - %s:%d %s: %s", h.name, file, line, r.Level, r.Message)
	buf = append(buf, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.prefix, a)
		return true
	})
	buf = append(buf, 0)

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range h.sinks {
		s(buf)
	}
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = append([]byte(nil), h.attrs...)
	for _, a := range attrs {
		h2.attrs = appendAttr(h2.attrs, h.prefix, a)
	}
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, prefix, ga)
		}
		return buf
	}
	buf = append(buf, ' ')
	buf = append(buf, prefix...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	s := a.Value.String()
	if s == "" || strings.ContainsAny(s, " =\"\n") {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}

// Init installs a Handler writing to the log functions of the arcdps
// module as the default slog logger.
func Init(name string, module unsafe.Pointer) {
	slog.SetDefault(slog.New(NewHandler(name, &Level, HostSinks(module)...)))
}
