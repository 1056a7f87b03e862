package lrc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	tagRegex  = regexp.MustCompile(`^\[([A-Za-z]+):([^\]]*)\]$`)
	timeRegex = regexp.MustCompile(`\[(\d{1,2}):(\d{2})(?:\.(\d{1,2}))?\]`)
	// one or more leading time tags followed by the lyric text
	timedLineRegex = regexp.MustCompile(`^((?:\[\d{1,2}:\d{2}(?:\.\d{1,2})?\])+)(.*)$`)
)

// ParseError reports an LRC line that could not be classified, with the
// 1-based line number and the offending content.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed LRC line %d: %q", e.Line, e.Text)
}

// ParseFile reads and parses an LRC file from disk.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open LRC file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Parse(f)
}

// ParseString parses LRC text held in memory.
func ParseString(text string) (*File, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads LRC lines from r and builds a File. Blank lines and bare
// text without any tag are skipped; a line that opens a tag but matches
// neither the metadata nor the timestamp grammar aborts the parse.
func Parse(r io.Reader) (*File, error) {
	file := New()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		event, ok, err := parseLine(line, lineNum)
		if err != nil {
			return nil, err
		}
		if ok {
			file.Add(event)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading LRC data: %w", err)
	}

	return file, nil
}

func parseLine(line string, lineNum int) (Event, bool, error) {
	if strings.HasPrefix(line, "#") {
		return NewMetadata(TagComment, strings.TrimSpace(strings.TrimPrefix(line, "#"))), true, nil
	}

	if !strings.HasPrefix(line, "[") {
		// plain text with no tag carries no structure worth keeping
		return Event{}, false, nil
	}

	if m := tagRegex.FindStringSubmatch(line); m != nil {
		return NewMetadata(m[1], strings.TrimSpace(m[2])), true, nil
	}

	if m := timedLineRegex.FindStringSubmatch(line); m != nil {
		event, err := parseTimedLine(m[1], m[2], lineNum)
		if err != nil {
			return Event{}, false, err
		}
		return event, true, nil
	}

	return Event{}, false, &ParseError{Line: lineNum, Text: line}
}

func parseTimedLine(tags, text string, lineNum int) (Event, error) {
	matches := timeRegex.FindAllStringSubmatch(tags, -1)
	if len(matches) == 0 {
		return Event{}, &ParseError{Line: lineNum, Text: tags + text}
	}

	event := NewLyric(0, strings.TrimSpace(text))

	start, err := parseTimeCode(matches[0])
	if err != nil {
		return Event{}, &ParseError{Line: lineNum, Text: tags + text}
	}
	event.Time = start

	// a second tag marks a repeat of the same line; further tags are rare
	// enough that they are dropped
	if len(matches) > 1 {
		repeat, err := parseTimeCode(matches[1])
		if err != nil {
			return Event{}, &ParseError{Line: lineNum, Text: tags + text}
		}
		event.Repeat = repeat
		event.HasRepeat = true
	}

	return event, nil
}

// converts the submatches of timeRegex to a duration; the fractional
// field is centiseconds and may be one or two digits
func parseTimeCode(match []string) (time.Duration, error) {
	minutes, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, err
	}
	seconds, err := strconv.Atoi(match[2])
	if err != nil {
		return 0, err
	}

	centis := 0
	if match[3] != "" {
		centis, err = strconv.Atoi(match[3])
		if err != nil {
			return 0, err
		}
	}

	return time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(centis)*10*time.Millisecond, nil
}
