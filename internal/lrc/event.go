package lrc

import (
	"fmt"
	"hash/crc32"
	"time"
)

// event kind, switched exhaustively at serialization and export sites
type Kind int

const (
	KindMetadata Kind = iota
	KindLyric
)

// well-known LRC metadata tags
const (
	TagComment    = "#"      // comment line
	TagTitle      = "ti"     // title of the song
	TagArtist     = "ar"     // artist performing the song
	TagAlbum      = "al"     // album the song is from
	TagAuthor     = "au"     // author of the song
	TagLyricist   = "lr"     // lyricist of the song
	TagLength     = "length" // length of the song (mm:ss)
	TagFileAuthor = "by"     // author of the LRC file, not the song
	TagOffset     = "offset" // global lyric time offset in milliseconds
	TagCreator    = "re"     // player or editor that created the file
	TagVersion    = "ve"     // version of that program
)

// represents a single LRC line: either a metadata tag or a timed lyric
type Event struct {
	Kind Kind
	Key  string        // metadata tag name, empty for lyrics
	Time time.Duration // lyric start time
	// second occurrence of the same line, e.g. a chorus
	Repeat    time.Duration
	HasRepeat bool
	Text      string
}

// NewMetadata returns a metadata event for the given tag key and value.
func NewMetadata(key, value string) Event {
	return Event{Kind: KindMetadata, Key: key, Text: value}
}

// NewLyric returns a timed lyric event.
func NewLyric(at time.Duration, text string) Event {
	return Event{Kind: KindLyric, Time: at, Text: text}
}

// ID returns the hex crc32 checksum of the composed LRC line.
func (e Event) ID() string {
	checksum := crc32.ChecksumIEEE([]byte(e.Compose()))
	return fmt.Sprintf("%#x", checksum)
}

// Compose renders the event back to its LRC line form.
func (e Event) Compose() string {
	switch e.Kind {
	case KindMetadata:
		if e.Key == TagComment {
			return "#" + e.Text
		}
		return fmt.Sprintf("[%s:%s]", e.Key, e.Text)
	case KindLyric:
		if e.HasRepeat {
			return fmt.Sprintf("[%s][%s]%s",
				formatTimeCode(e.Time),
				formatTimeCode(e.Repeat),
				e.Text)
		}
		return fmt.Sprintf("[%s]%s", formatTimeCode(e.Time), e.Text)
	default:
		panic(fmt.Sprintf("unknown event kind %d", e.Kind))
	}
}

// formats a duration as an LRC time code, mm:ss.xx with centisecond
// precision and zero-padded fields
func formatTimeCode(d time.Duration) string {
	centis := d.Milliseconds() / 10
	return fmt.Sprintf("%02d:%02d.%02d",
		centis/6000,
		(centis/100)%60,
		centis%100)
}
