package sdg

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// ReadLocalTranscript reads a transcript from a local text file. The file
// is grouped into 4-line records: a timestamp line, a speaker line, the
// transcript text, and a blank separator. The text lines are trimmed and
// joined with newlines in file order; empty text lines and records
// truncated below three lines are dropped.
func ReadLocalTranscript(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: not valid UTF-8 text", path)
	}

	lines := strings.Split(string(data), "\n")
	var kept []string
	for i := 0; i < len(lines); i += 4 {
		if i+2 >= len(lines) {
			break
		}
		if text := strings.TrimSpace(lines[i+2]); text != "" {
			kept = append(kept, text)
		}
	}
	if len(kept) == 0 {
		return "", fmt.Errorf("%s: no transcript text found", path)
	}
	return strings.Join(kept, "\n"), nil
}

// FilenameTitle derives a display title from a transcript file path: the
// base name without its extension.
func FilenameTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

var filenameDate = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{2})`)

// FilenameDate looks for an MM.DD.YY date in the base name of path, as in
// "Sermon 09.14.25.txt", and reports whether one was found. Years are
// interpreted in the 2000s.
func FilenameDate(path string) (time.Time, bool) {
	m := filenameDate.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return time.Date(year+2000, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}
