package lrc

import (
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mgpai22/lyrix/internal/subtitle"
)

// Exporter converts the timed lyrics of a File into subtitle cues.
type Exporter struct {
	// display duration of the final line, which has no following line
	// to end it
	TailGap time.Duration
}

func NewDefaultExporter() *Exporter {
	return &Exporter{
		TailGap: 5 * time.Second,
	}
}

// a single on-screen occurrence of a lyric line; repeated lines produce
// two occurrences
type occurrence struct {
	at   time.Duration
	text string
}

// Export selects the timed lyrics, orders them by time and pairs each
// start with the next occurrence's start to form an end time. Metadata
// and empty lyric lines are excluded.
func (e *Exporter) Export(f *File) *subtitle.Subtitle {
	timed := lo.Filter(f.Events(), func(event Event, _ int) bool {
		return event.Kind == KindLyric && strings.TrimSpace(event.Text) != ""
	})

	var occurrences []occurrence
	for _, event := range timed {
		occurrences = append(occurrences, occurrence{
			at:   event.Time,
			text: event.Text,
		})
		if event.HasRepeat {
			occurrences = append(occurrences, occurrence{
				at:   event.Repeat,
				text: event.Text,
			})
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].at < occurrences[j].at
	})

	entries := lo.Map(occurrences, func(occ occurrence, i int) subtitle.Entry {
		end := occ.at + e.TailGap
		if i+1 < len(occurrences) {
			end = occurrences[i+1].at
		}
		return subtitle.Entry{
			Index:     i + 1,
			StartTime: occ.at,
			EndTime:   end,
			Text:      occ.text,
		}
	})

	return &subtitle.Subtitle{
		Entries: entries,
		Format:  string(subtitle.FormatSRT),
	}
}

// FromSubtitle builds a File of timed lyrics from subtitle cues. Cue end
// times are dropped and multi-line cue text is joined with spaces, since
// LRC lines carry a start time only.
func FromSubtitle(sub *subtitle.Subtitle) *File {
	file := New()
	for _, entry := range sub.Entries {
		text := strings.ReplaceAll(entry.Text, "\n", " ")
		file.Add(NewLyric(entry.StartTime, text))
	}
	return file
}

// SRT renders the file as SRT text with the default exporter settings.
func (f *File) SRT() string {
	text, _ := subtitle.Render(NewDefaultExporter().Export(f), subtitle.FormatSRT)
	return text
}

// WriteSRT writes the SRT rendition to path.
func (f *File) WriteSRT(path string) error {
	writer, err := subtitle.NewWriter(subtitle.FormatSRT)
	if err != nil {
		return err
	}
	return writer.Write(NewDefaultExporter().Export(f), path)
}
