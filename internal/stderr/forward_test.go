package stderr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestForward(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	in := "ALSA lib pcm.c:8526:(snd_pcm_recover) underrun occurred\n\n   \nsecond line  \n"
	Forward(strings.NewReader(in), logger)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d log lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "underrun occurred") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], `"message":"second line"`) {
		t.Errorf("second line = %q", lines[1])
	}
	if !strings.Contains(lines[0], `"level":"warn"`) || !strings.Contains(lines[0], `"source":"stderr"`) {
		t.Errorf("missing level/source: %q", lines[0])
	}
}
