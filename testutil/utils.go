package testutil

import (
	"testing"
)

type TestWriter struct {
	t *testing.T
}

func NewTestWriter(t *testing.T) TestWriter {
	return TestWriter{t}
}

func (tw TestWriter) Write(p []byte) (n int, err error) {
	tw.t.Log(string(p))
	return len(p), nil
}
