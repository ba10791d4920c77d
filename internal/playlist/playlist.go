package playlist

import (
	"fmt"
	"strconv"
	"strings"

	ioutils "github.com/handiism/timecrawl/internal/io"
	"github.com/handiism/timecrawl/internal/model"
)

// Format represents a supported playlist file format.
type Format int

const (
	// FormatM3U creates .m3u files (most compatible).
	// Can be extended with EXTINF lines for duration/title info.
	FormatM3U Format = iota

	// FormatPLS creates .pls files (Winamp/SHOUTcast format).
	FormatPLS

	// FormatWPL creates .wpl files (Windows Media Player).
	FormatWPL

	// FormatZPL creates .zpl files (Zune/Groove Music).
	FormatZPL
)

// ParseFormat maps "m3u", "pls", "wpl" or "zpl" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m3u":
		return FormatM3U, nil
	case "pls":
		return FormatPLS, nil
	case "wpl":
		return FormatWPL, nil
	case "zpl":
		return FormatZPL, nil
	default:
		return FormatM3U, fmt.Errorf("unknown playlist format %q", s)
	}
}

func (f Format) String() string {
	switch f {
	case FormatM3U:
		return "m3u"
	case FormatPLS:
		return "pls"
	case FormatWPL:
		return "wpl"
	case FormatZPL:
		return "zpl"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// Creator generates playlist content in one format.
//
// Example:
//
//	creator := NewCreator(FormatM3U, true)
//	content := creator.Create("Daft Punk 2001", tracks)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:224,Daft Punk - Digital Love
//	// spotify:track:2VEZx7NWsZ1D0eJ4uv5Fym
type Creator struct {
	format   Format
	extended bool // For M3U: include EXTINF lines with duration/title
}

// NewCreator creates a new Creator. extended only affects FormatM3U.
func NewCreator(format Format, extended bool) *Creator {
	return &Creator{
		format:   format,
		extended: extended,
	}
}

// Create renders tracks as a playlist titled title.
func (c *Creator) Create(title string, tracks []model.Track) string {
	switch c.format {
	case FormatPLS:
		return c.createPLS(tracks)
	case FormatWPL:
		return c.createWPL(title, tracks)
	case FormatZPL:
		return c.createZPL(title, tracks)
	default:
		return c.createM3U(tracks)
	}
}

// Write renders tracks and writes the playlist to path.
func (c *Creator) Write(path, title string, tracks []model.Track) error {
	if err := ioutils.WriteFile(path, []byte(c.Create(title, tracks))); err != nil {
		return fmt.Errorf("write playlist %s: %w", path, err)
	}
	return nil
}

// createM3U generates an M3U playlist.
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:180,Artist - Title
//	spotify:track:...
func (c *Creator) createM3U(tracks []model.Track) string {
	var sb strings.Builder

	if c.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, t := range tracks {
		if c.extended {
			fmt.Fprintf(&sb, "#EXTINF:%d,%s - %s\n", seconds(t), t.Artists(), t.Name)
		}
		sb.WriteString(t.Key() + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
//	[playlist]
//	File1=spotify:track:...
//	Title1=Artist - Title
//	Length1=180
//	NumberOfEntries=1
//	Version=2
func (c *Creator) createPLS(tracks []model.Track) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, t := range tracks {
		idx := i + 1
		fmt.Fprintf(&sb, "File%d=%s\n", idx, t.Key())
		fmt.Fprintf(&sb, "Title%d=%s - %s\n", idx, t.Artists(), t.Name)
		fmt.Fprintf(&sb, "Length%d=%d\n", idx, seconds(t))
	}

	fmt.Fprintf(&sb, "NumberOfEntries=%d\n", len(tracks))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// createWPL generates a Windows Media Player playlist.
func (c *Creator) createWPL(title string, tracks []model.Track) string {
	var sb strings.Builder

	sb.WriteString("<?wpl version=\"1.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", escapeXML(title))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, t := range tracks {
		fmt.Fprintf(&sb, "      <media src=\"%s\"/>\n", escapeXML(t.Key()))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// createZPL generates a Zune/Groove Music playlist.
//
// ZPL is similar to WPL but carries album title, artist and duration per entry.
func (c *Creator) createZPL(title string, tracks []model.Track) string {
	var sb strings.Builder

	sb.WriteString("<?zpl version=\"2.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", escapeXML(title))
	sb.WriteString("    <meta name=\"Generator\" content=\"timecrawl\"/>\n")
	fmt.Fprintf(&sb, "    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(tracks))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, t := range tracks {
		fmt.Fprintf(&sb, "      <media src=\"%s\" albumTitle=\"%s\" albumArtist=\"%s\" trackTitle=\"%s\" trackArtist=\"%s\" duration=\"%d\"/>\n",
			escapeXML(t.Key()),
			escapeXML(t.Album.Name),
			escapeXML(t.Artists()),
			escapeXML(t.Name),
			escapeXML(t.Artists()),
			t.DurationMs)
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// FileName expands {artist} and {year} in pattern, appends ext and sanitizes
// the result for use as a file name.
//
// Example:
//
//	FileName("{artist} - {year}", "AC/DC", 1980, ".m3u") // "AC_DC - 1980.m3u"
func FileName(pattern, artist string, year int, ext string) string {
	name := strings.NewReplacer(
		"{artist}", artist,
		"{year}", strconv.Itoa(year),
	).Replace(pattern)
	return ioutils.SanitizeFileName(name + ext)
}

func seconds(t model.Track) int {
	return t.DurationMs / 1000
}

// escapeXML escapes special XML characters in a string.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
