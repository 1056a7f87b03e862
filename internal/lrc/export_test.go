package lrc

import (
	"strings"
	"testing"
	"time"

	"github.com/mgpai22/lyrix/internal/subtitle"
)

func TestExportPairsConsecutiveLines(t *testing.T) {
	file := New()
	file.Add(NewMetadata(TagTitle, "Title"))
	file.Add(NewLyric(10*time.Second, "first"))
	file.Add(NewLyric(20*time.Second, "second"))

	sub := NewDefaultExporter().Export(file)

	if len(sub.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(sub.Entries))
	}

	first := sub.Entries[0]
	if first.Index != 1 {
		t.Errorf("expected index 1, got %d", first.Index)
	}
	if first.StartTime != 10*time.Second || first.EndTime != 20*time.Second {
		t.Errorf("unexpected span: %v --> %v", first.StartTime, first.EndTime)
	}
	if first.Text != "first" {
		t.Errorf("unexpected text %q", first.Text)
	}

	last := sub.Entries[1]
	if last.EndTime != 25*time.Second {
		t.Errorf("expected tail gap end 25s, got %v", last.EndTime)
	}
}

func TestExportSRTOutput(t *testing.T) {
	file, err := ParseString("[00:10.00]first\n[00:20.00]second")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	out := file.SRT()

	if !strings.Contains(out, "1\n00:00:10,000 --> 00:00:20,000\nfirst\n") {
		t.Errorf("missing first block in output:\n%s", out)
	}
	if !strings.Contains(out, "2\n00:00:20,000 --> 00:00:25,000\nsecond\n") {
		t.Errorf("missing second block in output:\n%s", out)
	}
}

func TestExportSortsByTime(t *testing.T) {
	file := New()
	file.Add(NewLyric(20*time.Second, "later"))
	file.Add(NewLyric(10*time.Second, "earlier"))

	sub := NewDefaultExporter().Export(file)

	if sub.Entries[0].Text != "earlier" || sub.Entries[1].Text != "later" {
		t.Errorf("entries not sorted by time: %+v", sub.Entries)
	}
	if sub.Entries[0].EndTime != 20*time.Second {
		t.Errorf("end not paired after sort: %v", sub.Entries[0].EndTime)
	}
}

func TestExportExpandsRepeats(t *testing.T) {
	file := New()
	chorus := NewLyric(10*time.Second, "chorus")
	chorus.Repeat = 40 * time.Second
	chorus.HasRepeat = true
	file.Add(chorus)
	file.Add(NewLyric(20*time.Second, "verse"))

	sub := NewDefaultExporter().Export(file)

	if len(sub.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(sub.Entries))
	}
	if sub.Entries[0].Text != "chorus" ||
		sub.Entries[1].Text != "verse" ||
		sub.Entries[2].Text != "chorus" {
		t.Errorf("unexpected order: %+v", sub.Entries)
	}
	if sub.Entries[2].StartTime != 40*time.Second {
		t.Errorf("repeat start wrong: %v", sub.Entries[2].StartTime)
	}
	if sub.Entries[1].EndTime != 40*time.Second {
		t.Errorf("verse should end when the repeat starts, got %v", sub.Entries[1].EndTime)
	}
}

func TestExportSkipsEmptyLines(t *testing.T) {
	file := New()
	file.Add(NewLyric(10*time.Second, "line"))
	file.Add(NewLyric(20*time.Second, "   "))

	sub := NewDefaultExporter().Export(file)

	if len(sub.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(sub.Entries))
	}
}

func TestExportEmptyFile(t *testing.T) {
	sub := NewDefaultExporter().Export(New())
	if len(sub.Entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(sub.Entries))
	}

	out, err := subtitle.Render(sub, subtitle.FormatSRT)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty SRT output, got %q", out)
	}
}

func TestExportCustomTailGap(t *testing.T) {
	file := New()
	file.Add(NewLyric(10*time.Second, "only"))

	exporter := &Exporter{TailGap: 3 * time.Second}
	sub := exporter.Export(file)

	if sub.Entries[0].EndTime != 13*time.Second {
		t.Errorf("expected 13s end, got %v", sub.Entries[0].EndTime)
	}
}

func TestFromSubtitle(t *testing.T) {
	sub := &subtitle.Subtitle{
		Entries: []subtitle.Entry{
			{Index: 1, StartTime: 10 * time.Second, EndTime: 12 * time.Second, Text: "one\ntwo"},
			{Index: 2, StartTime: 20 * time.Second, EndTime: 22 * time.Second, Text: "three"},
		},
		Format: string(subtitle.FormatSRT),
	}

	file := FromSubtitle(sub)

	if file.Len() != 2 {
		t.Fatalf("expected 2 events, got %d", file.Len())
	}

	first := file.Events()[0]
	if first.Kind != KindLyric || first.Time != 10*time.Second {
		t.Errorf("unexpected first event %+v", first)
	}
	if first.Text != "one two" {
		t.Errorf("multi-line text not joined: %q", first.Text)
	}

	if got := file.LRC(); got != "[00:10.00]one two\n[00:20.00]three\n" {
		t.Errorf("unexpected LRC output %q", got)
	}
}

func TestWriteSRT(t *testing.T) {
	file, err := ParseString("[00:10.00]line")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	path := t.TempDir() + "/out.srt"
	if err := file.WriteSRT(path); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	sub, err := subtitle.ParseSRTFile(path)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if len(sub.Entries) != 1 || sub.Entries[0].Text != "line" {
		t.Errorf("unexpected entries %+v", sub.Entries)
	}
}
