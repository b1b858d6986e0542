package format

import (
	"errors"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		token string
		want  Preset
	}{
		{"", YouTube},
		{"youtube", YouTube},
		{"YouTube", YouTube},
		{"YOUTUBE", YouTube},
		{"gif", Gif},
		{"Gif", Gif},
		{"copy", Copy},
		{"Copy", Copy},
		{"  copy  ", Copy},
	}
	for _, tc := range cases {
		got, err := Lookup(tc.token)
		if err != nil {
			t.Fatalf("Lookup(%q) returned error: %v", tc.token, err)
		}
		if got != tc.want {
			t.Fatalf("Lookup(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("webm")
	if !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	if !strings.Contains(err.Error(), "webm") {
		t.Fatalf("error should name the offending token, got %q", err)
	}
}

func TestLookupDeterministic(t *testing.T) {
	first, err := Lookup("gif")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := Lookup("gif")
		if err != nil {
			t.Fatalf("Lookup returned error: %v", err)
		}
		if again != first {
			t.Fatalf("Lookup not deterministic: %v vs %v", again, first)
		}
	}
}

func TestOutputPath(t *testing.T) {
	cases := []struct {
		preset Preset
		input  string
		want   string
	}{
		{YouTube, "video.mkv", "video.mp4"},
		{YouTube, "movie.mov", "movie.mp4"},
		{YouTube, "noext", "noext.mp4"},
		{YouTube, ".bashrc", ".bashrc.mp4"},
		{YouTube, "/home/user/.bashrc", "/home/user/.bashrc.mp4"},
		{Gif, "clip.mp4", "clip.gif"},
		{Gif, ".bashrc", ".bashrc.gif"},
		{Copy, "video.mkv", "video.copy.mkv"},
		{Copy, "/tmp/show.s01e01.mkv", "/tmp/show.s01e01.copy.mkv"},
	}
	for _, tc := range cases {
		got, err := tc.preset.OutputPath(tc.input)
		if err != nil {
			t.Fatalf("OutputPath(%s, %q) returned error: %v", tc.preset, tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("OutputPath(%s, %q) = %q, want %q", tc.preset, tc.input, got, tc.want)
		}
	}
}

func TestOutputPathCopyWithoutExtension(t *testing.T) {
	for _, input := range []string{"noext", ".bashrc", "/home/user/.bashrc"} {
		_, err := Copy.OutputPath(input)
		if !errors.Is(err, ErrNoExtension) {
			t.Fatalf("Copy.OutputPath(%q): expected ErrNoExtension, got %v", input, err)
		}
		if !strings.Contains(err.Error(), input) {
			t.Fatalf("error should name the input path, got %q", err)
		}
	}
}

func TestInputArgs(t *testing.T) {
	want := []string{"-y", "-hwaccel", "cuvid", "-c:v", "h264_cuvid"}
	got := YouTube.InputArgs()
	if len(got) != len(want) {
		t.Fatalf("unexpected youtube input args: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("youtube input args[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if args := Gif.InputArgs(); len(args) != 0 {
		t.Fatalf("gif preset should have no input args, got %v", args)
	}
	if args := Copy.InputArgs(); len(args) != 0 {
		t.Fatalf("copy preset should have no input args, got %v", args)
	}
}

func TestOutputArgs(t *testing.T) {
	yt := YouTube.OutputArgs()
	if len(yt) == 0 || yt[0] != "-c:v" || yt[1] != "h264_nvenc" {
		t.Fatalf("unexpected youtube output args: %v", yt)
	}
	if yt[len(yt)-2] != "-f" || yt[len(yt)-1] != "mp4" {
		t.Fatalf("youtube output args should end with container selection, got %v", yt)
	}

	gif := Gif.OutputArgs()
	if len(gif) != 4 || gif[0] != "-filter_complex" {
		t.Fatalf("unexpected gif output args: %v", gif)
	}
	if !strings.Contains(gif[1], "palettegen") || !strings.Contains(gif[1], "paletteuse") {
		t.Fatalf("gif filter graph missing palette passes: %q", gif[1])
	}
	if !strings.Contains(gif[1], "fps=12") || !strings.Contains(gif[1], "scale=280:-1") {
		t.Fatalf("gif filter graph missing rate/scale: %q", gif[1])
	}

	cp := Copy.OutputArgs()
	want := []string{"-c:v", "copy", "-c:a", "copy"}
	if len(cp) != len(want) {
		t.Fatalf("unexpected copy output args: %v", cp)
	}
	for i := range want {
		if cp[i] != want[i] {
			t.Fatalf("copy output args[%d] = %q, want %q", i, cp[i], want[i])
		}
	}
}

func TestPresetsOrder(t *testing.T) {
	presets := Presets()
	if len(presets) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(presets))
	}
	if presets[0] != YouTube || presets[1] != Gif || presets[2] != Copy {
		t.Fatalf("unexpected catalog order: %v", presets)
	}
	for _, p := range presets {
		if p.Description() == "" {
			t.Fatalf("preset %s missing description", p)
		}
	}
}
