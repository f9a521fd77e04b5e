//
// Tencent is pleased to support the open source community by making trpc-clseval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-clseval-go is licensed under the Apache License Version 2.0.
//
//

package log

import (
	"fmt"
	"testing"

	"go.uber.org/zap/zapcore"
)

// stubLogger records the last message for each level so that the
// package-level helpers can be asserted without a real zap core.
type stubLogger struct {
	last string
}

func (s *stubLogger) Debug(args ...any)                 { s.last = fmt.Sprint(args...) }
func (s *stubLogger) Debugf(format string, args ...any) { s.last = fmt.Sprintf(format, args...) }
func (s *stubLogger) Info(args ...any)                  { s.last = fmt.Sprint(args...) }
func (s *stubLogger) Infof(format string, args ...any)  { s.last = fmt.Sprintf(format, args...) }
func (s *stubLogger) Warn(args ...any)                  { s.last = fmt.Sprint(args...) }
func (s *stubLogger) Warnf(format string, args ...any)  { s.last = fmt.Sprintf(format, args...) }
func (s *stubLogger) Error(args ...any)                 { s.last = fmt.Sprint(args...) }
func (s *stubLogger) Errorf(format string, args ...any) { s.last = fmt.Sprintf(format, args...) }
func (s *stubLogger) Fatal(args ...any)                 { s.last = fmt.Sprint(args...) }
func (s *stubLogger) Fatalf(format string, args ...any) { s.last = fmt.Sprintf(format, args...) }

func TestSetLevel(t *testing.T) {
	cases := []struct {
		in       string
		expected zapcore.Level
	}{
		{LevelDebug, zapcore.DebugLevel},
		{LevelInfo, zapcore.InfoLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
		{LevelFatal, zapcore.FatalLevel},
		{"unknown", zapcore.InfoLevel}, // default branch
	}

	for _, c := range cases {
		SetLevel(c.in)
		if got := zapLevel.Level(); got != c.expected {
			t.Fatalf("SetLevel(%q) = %v; want %v", c.in, got, c.expected)
		}
	}
	SetLevel(LevelInfo)
}

func TestPackageHelpersDelegate(t *testing.T) {
	stub := &stubLogger{}
	oldDefault := Default
	Default = stub
	t.Cleanup(func() { Default = oldDefault })

	Warnf("thr %.2f ignored", 0.5)
	if stub.last != "thr 0.50 ignored" {
		t.Fatalf("Warnf delegated %q", stub.last)
	}
	Info("computing")
	if stub.last != "computing" {
		t.Fatalf("Info delegated %q", stub.last)
	}
}
