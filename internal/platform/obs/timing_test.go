package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestTimeLogsRequestIDAndError(t *testing.T) {
	buf := captureLog(t)
	ctx := WithRequestID(context.Background(), "abc123")

	err := errors.New("boom")
	Time(ctx, "router.RouteLeg")(&err)

	out := buf.String()
	for _, want := range []string{"req_id=abc123", "op=router.RouteLeg", "err=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}

func TestTimeWithoutRequestID(t *testing.T) {
	buf := captureLog(t)

	var err error
	Time(context.Background(), "plan")(&err)

	out := buf.String()
	if !strings.Contains(out, "req_id=- op=plan") {
		t.Errorf("log %q missing placeholder request id", out)
	}
	if strings.Contains(out, "err=") {
		t.Errorf("log %q should not report an error", out)
	}
}
