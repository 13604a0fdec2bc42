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


package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	lines []string
}

func (r *recorder) sink(line []byte) {
	r.lines = append(r.lines, string(line))
}

func TestHandler(t *testing.T) {
	var file, window recorder
	logger := slog.New(NewHandler("squad tracker", nil, file.sink, window.sink))

	logger.Debug("hidden")
	logger.Info("loaded", "users", 3, "name", "Account Name")
	logger.With("session", 7).WithGroup("chat").Warn("dropped", "len", 0, "text", "")

	require.Len(t, file.lines, 2)
	assert.Equal(t, file.lines, window.lines)
	for _, l := range file.lines {
		assert.True(t, strings.HasSuffix(l, "\x00"), l)
		assert.Equal(t, 1, strings.Count(l, "\x00"))
	}

	assert.Regexp(t, `^squad tracker - logging_test\.go:\d+ INFO: loaded users=3 name="Account Name"\x00$`, file.lines[0])
	assert.Regexp(t, `^squad tracker - logging_test\.go:\d+ WARN: dropped session=7 chat\.len=0 chat\.text=""\x00$`, file.lines[1])
}

func TestHandlerLevel(t *testing.T) {
	var rec recorder
	var level slog.LevelVar
	level.Set(slog.LevelError)
	logger := slog.New(NewHandler("p", &level, rec.sink))

	logger.Warn("no")
	assert.Empty(t, rec.lines)
	level.Set(slog.LevelDebug)
	logger.Debug("yes", slog.Group("g", "a", 1))
	require.Len(t, rec.lines, 1)
	assert.Contains(t, rec.lines[0], "DEBUG: yes g.a=1")
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler("p", nil, WriterSink(&buf)))
	logger.Error("failed")
	logger.Info("again")
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `^p - logging_test\.go:\d+ ERROR: failed$`, lines[0])
	assert.NotContains(t, buf.String(), "\x00")
}

func TestCSinkNil(t *testing.T) {
	assert.Nil(t, CSink(nil))
}
