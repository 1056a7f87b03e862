package lrc

import (
	"fmt"
	"hash/crc32"
	"strings"

	"github.com/samber/lo"
)

// File is an ordered collection of LRC events. Events keep the order
// they were added in; sorting by time happens only on export.
type File struct {
	events []Event
}

func New() *File {
	return &File{}
}

// Add appends an event. Duplicate events and duplicate metadata keys are
// allowed; the metadata accessors resolve duplicates last-wins.
func (f *File) Add(event Event) {
	f.events = append(f.events, event)
}

// Events returns the events in stored order.
func (f *File) Events() []Event {
	return f.events
}

func (f *File) Len() int {
	return len(f.events)
}

// Metadata returns the value of the last metadata event with the given
// tag key.
func (f *File) Metadata(key string) (string, bool) {
	for i := len(f.events) - 1; i >= 0; i-- {
		if f.events[i].Kind == KindMetadata && f.events[i].Key == key {
			return f.events[i].Text, true
		}
	}
	return "", false
}

func (f *File) Title() string {
	title, _ := f.Metadata(TagTitle)
	return title
}

func (f *File) Artist() string {
	artist, _ := f.Metadata(TagArtist)
	return artist
}

func (f *File) Album() string {
	album, _ := f.Metadata(TagAlbum)
	return album
}

func (f *File) Length() string {
	length, _ := f.Metadata(TagLength)
	return length
}

// ID returns the hex crc32 checksum over the IDs of all events.
func (f *File) ID() string {
	ids := lo.Map(f.events, func(event Event, _ int) string {
		return event.ID()
	})
	checksum := crc32.ChecksumIEEE([]byte(strings.Join(ids, "\n")))
	return fmt.Sprintf("%#x", checksum)
}

// PlainText returns the lyric text only, one line per occurrence, with
// repeated lines written twice. Metadata and empty lyrics are dropped.
func (f *File) PlainText() string {
	var lines []string
	for _, event := range f.events {
		if event.Kind != KindLyric || event.Text == "" {
			continue
		}
		lines = append(lines, event.Text)
		if event.HasRepeat {
			lines = append(lines, event.Text)
		}
	}
	return strings.Join(lines, "\n")
}

// MergeRepeats collapses consecutive timed lyrics with identical text
// into a single event carrying a repeat timestamp.
func (f *File) MergeRepeats() {
	var merged []Event
	for _, event := range f.events {
		n := len(merged)
		if n > 0 && event.Kind == KindLyric && !event.HasRepeat {
			prev := &merged[n-1]
			if prev.Kind == KindLyric && !prev.HasRepeat && prev.Text == event.Text {
				prev.Repeat = event.Time
				prev.HasRepeat = true
				continue
			}
		}
		merged = append(merged, event)
	}
	f.events = merged
}
