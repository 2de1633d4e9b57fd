package explorer

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

func testEventData(k int) EventData {
	tof, x, y := syntheticEvents(k, 0)
	return EventData{ToF: tof, X: x, Y: y}
}

func TestBuildFiguresOrderAndCount(t *testing.T) {
	data := testEventData(200)
	ranges := DefaultRanges()

	figures, err := BuildFigures(data, ranges, 500, 200)
	if err != nil {
		t.Fatalf("build figures: %v", err)
	}
	if len(figures) != 2+len(ranges) {
		t.Fatalf("expected %d figures, got %d", 2+len(ranges), len(figures))
	}
	if figures[0].Title.Text != "Time-of-Flight Spectrum" {
		t.Fatalf("figure 0 title: %q", figures[0].Title.Text)
	}
	if figures[1].Title.Text != "2D Histogram: ToF vs x-position" {
		t.Fatalf("figure 1 title: %q", figures[1].Title.Text)
	}
	for i, r := range ranges {
		title := figures[2+i].Title.Text
		if !strings.Contains(title, "range "+r.Label) {
			t.Fatalf("figure %d title does not name range %s: %q", 2+i, r.Label, title)
		}
	}
}

func TestBuildFiguresEmptyRange(t *testing.T) {
	// A range with no events in it still gets a (degenerate) figure.
	data := testEventData(50)
	ranges := []ToFRange{{Label: "A", Min: 100, Max: 200}}
	figures, err := BuildFigures(data, ranges, 100, 50)
	if err != nil {
		t.Fatalf("build figures: %v", err)
	}
	if len(figures) != 3 {
		t.Fatalf("expected 3 figures, got %d", len(figures))
	}
}

func TestPDFFileName(t *testing.T) {
	stamp := time.Date(2026, 8, 30, 14, 5, 59, 0, time.UTC)
	if got := PDFFileName(stamp); got != "hilux_plots_2026-08-30_14-05.pdf" {
		t.Fatalf("unexpected file name: %q", got)
	}
	pattern := regexp.MustCompile(`^hilux_plots_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}\.pdf$`)
	if !pattern.MatchString(PDFFileName(time.Now())) {
		t.Fatalf("file name does not match the timestamp pattern")
	}
}

func TestWritePDF(t *testing.T) {
	dir := t.TempDir()
	data := testEventData(200)
	ranges := DefaultRanges()
	figures, err := BuildFigures(data, ranges, 500, 200)
	if err != nil {
		t.Fatalf("build figures: %v", err)
	}

	path := filepath.Join(dir, PDFFileName(time.Now()))
	if err := WritePDF(figures, path); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if len(content) == 0 {
		t.Fatalf("pdf file is empty")
	}
	// one page object per figure
	pages := bytes.Count(content, []byte("/Type /Page")) - bytes.Count(content, []byte("/Type /Pages"))
	if pages != len(figures) {
		t.Fatalf("expected %d pages, got %d", len(figures), pages)
	}
}

func TestWritePNGs(t *testing.T) {
	dir := t.TempDir()
	data := testEventData(100)
	figures, err := BuildFigures(data, DefaultRanges()[:1], 100, 50)
	if err != nil {
		t.Fatalf("build figures: %v", err)
	}

	paths, err := WritePNGs(figures, dir)
	if err != nil {
		t.Fatalf("write pngs: %v", err)
	}
	if len(paths) != len(figures) {
		t.Fatalf("expected %d files, got %d", len(figures), len(paths))
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("missing png %s: %v", path, err)
		}
	}
}
