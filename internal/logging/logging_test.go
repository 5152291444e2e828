package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriterLogger_LevelsAndPrefixes(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Debugf("debug %d", 1)
	log.Infof("info %d", 2)
	log.Warnf("warn %d", 3)
	log.Errorf("error %d", 4)

	out := buf.String()
	for _, want := range []string{"debug: debug 1", "info 2", "warning: warn 3", "error: error 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestWriterLogger_DebugSuppressedWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debugf("should not appear")
	if buf.Len() != 0 {
		t.Errorf("debug output emitted with debug disabled: %q", buf.String())
	}
}

func TestDiscard_DropsEverything(t *testing.T) {
	log := Discard()
	log.Infof("anything")
	log.Errorf("anything else")
}
