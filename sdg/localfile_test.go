package sdg_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sermonguides/tools/sdg"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Writing %s: %v", name, err)
	}
	return path
}

// record renders one well-formed 4-line transcript record.
func record(start, speaker, text string) string {
	return fmt.Sprintf("%s\n%s\n%s\n\n", start, speaker, text)
}

func TestReadLocalTranscript(t *testing.T) {
	var buf strings.Builder
	var want []string
	for i := 0; i < 7; i++ {
		text := fmt.Sprintf("Line number %d of the sermon.", i+1)
		buf.WriteString(record(fmt.Sprintf("00:0%d:00 - 00:0%d:59", i, i), "Pastor", text))
		want = append(want, text)
	}
	// A trailing 2-line fragment is dropped without error.
	buf.WriteString("00:07:00 - 00:07:59\nPastor")

	path := writeTempFile(t, "Sermon 09.14.25.txt", []byte(buf.String()))
	got, err := sdg.ReadLocalTranscript(path)
	if err != nil {
		t.Fatalf("ReadLocalTranscript: unexpected error: %v", err)
	}
	if want := strings.Join(want, "\n"); got != want {
		t.Errorf("ReadLocalTranscript: got\n%s\nwant\n%s", got, want)
	}
}

func TestReadLocalTranscriptSkipsEmptyText(t *testing.T) {
	content := record("00:00:00", "Pastor", "Before the gap.") +
		record("00:01:00", "Pastor", "   ") +
		record("00:02:00", "Pastor", "After the gap.")
	path := writeTempFile(t, "notes.txt", []byte(content))

	got, err := sdg.ReadLocalTranscript(path)
	if err != nil {
		t.Fatalf("ReadLocalTranscript: unexpected error: %v", err)
	}
	if want := "Before the gap.\nAfter the gap."; got != want {
		t.Errorf("ReadLocalTranscript: got %q, want %q", got, want)
	}
}

func TestReadLocalTranscriptErrors(t *testing.T) {
	if _, err := sdg.ReadLocalTranscript(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("ReadLocalTranscript(missing): got nil error")
	}

	bad := writeTempFile(t, "binary.txt", []byte{0xff, 0xfe, 0x00, 0x41})
	if _, err := sdg.ReadLocalTranscript(bad); err == nil {
		t.Error("ReadLocalTranscript(non-UTF-8): got nil error")
	}

	empty := writeTempFile(t, "empty.txt", nil)
	if _, err := sdg.ReadLocalTranscript(empty); err == nil {
		t.Error("ReadLocalTranscript(empty): got nil error")
	}
}

func TestFilenameTitle(t *testing.T) {
	tests := []struct {
		path, want string
	}{
		{"Sermon 09.14.25.txt", "Sermon 09.14.25"},
		{"/home/kc/transcripts/Easter Service.txt", "Easter Service"},
		{"plain", "plain"},
	}
	for _, test := range tests {
		if got := sdg.FilenameTitle(test.path); got != test.want {
			t.Errorf("FilenameTitle(%q): got %q, want %q", test.path, got, test.want)
		}
	}
}

func TestFilenameDate(t *testing.T) {
	ts, ok := sdg.FilenameDate("Sermon 09.14.25.txt")
	if !ok {
		t.Fatal("FilenameDate: no date found")
	}
	want := time.Date(2025, time.September, 14, 0, 0, 0, 0, time.Local)
	if !ts.Equal(want) {
		t.Errorf("FilenameDate: got %v, want %v", ts, want)
	}

	if _, ok := sdg.FilenameDate("Sermon on the Mount.txt"); ok {
		t.Error("FilenameDate: found a date where none exists")
	}
}
