// Package format holds the fixed catalog of transcode presets. Each preset
// bundles the ffmpeg flags that go before and after the input specification,
// plus the rule that derives an output file name from the input path. The
// catalog is a pure lookup table: it performs no I/O and fails only on an
// unrecognized token or, for the copy preset, an input without an extension.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Preset identifies one of the fixed transcode styles.
type Preset int

const (
	// YouTube re-encodes for high-bitrate streaming upload.
	YouTube Preset = iota
	// Gif renders a palette-optimized animated GIF.
	Gif
	// Copy repackages streams without re-encoding.
	Copy
)

var (
	// ErrUnknown reports a format token outside the catalog.
	ErrUnknown = errors.New("unknown format")
	// ErrNoExtension reports an input path the copy preset cannot rename.
	ErrNoExtension = errors.New("input has no extension")
)

// Lookup resolves a format token case-insensitively. An empty token selects
// the YouTube preset.
func Lookup(token string) (Preset, error) {
	trimmed := strings.TrimSpace(token)
	switch {
	case trimmed == "" || strings.EqualFold(trimmed, "youtube"):
		return YouTube, nil
	case strings.EqualFold(trimmed, "gif"):
		return Gif, nil
	case strings.EqualFold(trimmed, "copy"):
		return Copy, nil
	default:
		return YouTube, fmt.Errorf("%w: %q", ErrUnknown, trimmed)
	}
}

// Presets returns the catalog in display order.
func Presets() []Preset {
	return []Preset{YouTube, Gif, Copy}
}

func (p Preset) String() string {
	switch p {
	case YouTube:
		return "youtube"
	case Gif:
		return "gif"
	case Copy:
		return "copy"
	default:
		return fmt.Sprintf("preset(%d)", int(p))
	}
}

// Description summarizes the preset for catalog listings.
func (p Preset) Description() string {
	switch p {
	case YouTube:
		return "NVENC H.264 + AAC in an MP4 container, tuned for streaming upload"
	case Gif:
		return "12 fps, 280px-wide animated GIF with two-pass palette generation"
	case Copy:
		return "Stream copy of video and audio, no re-encode"
	default:
		return ""
	}
}

// InputArgs returns the flags that must precede the -i input specification.
// Only the YouTube preset carries input-side flags: it forces overwrite and
// requests CUVID hardware decode.
func (p Preset) InputArgs() []string {
	if p == YouTube {
		return []string{"-y", "-hwaccel", "cuvid", "-c:v", "h264_cuvid"}
	}
	return nil
}

// OutputArgs returns the encoder flags that follow the input specification
// and precede the output path.
func (p Preset) OutputArgs() []string {
	switch p {
	case YouTube:
		return []string{
			"-c:v", "h264_nvenc",
			"-coder", "1",
			"-preset", "llhq",
			"-rc:v", "vbr_minqp",
			"-qmin:v", "21",
			"-qmax:v", "23",
			"-b:v", "5000k",
			"-maxrate:v", "8000k",
			"-profile:v", "high",
			"-bf", "2",
			"-c:a", "aac",
			"-profile:a", "aac_low",
			"-b:a", "384k",
			"-f", "mp4",
		}
	case Gif:
		return []string{
			"-filter_complex", "[0:v] fps=12,scale=280:-1,split [a][b];[a] palettegen [p];[b][p] paletteuse",
			"-f", "gif",
		}
	case Copy:
		return []string{"-c:v", "copy", "-c:a", "copy"}
	default:
		return nil
	}
}

// OutputPath derives the output file name for the given input. YouTube and
// Gif replace the input's extension; Copy keeps the extension E and renames
// to base.copy.E, failing when the input has no extension to build on.
func (p Preset) OutputPath(input string) (string, error) {
	ext := filepath.Ext(input)
	// filepath.Ext reads a leading-dot name like ".bashrc" as all
	// extension. Such a name has no base to rename, so treat it as
	// extensionless and keep it whole.
	if ext == filepath.Base(input) {
		ext = ""
	}
	switch p {
	case YouTube:
		return strings.TrimSuffix(input, ext) + ".mp4", nil
	case Gif:
		return strings.TrimSuffix(input, ext) + ".gif", nil
	case Copy:
		if ext == "" {
			return "", fmt.Errorf("%w: %s", ErrNoExtension, input)
		}
		return strings.TrimSuffix(input, ext) + ".copy" + ext, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknown, p)
	}
}
