package playlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/timecrawl/internal/model"
)

func createTestTracks() []model.Track {
	return []model.Track{
		{
			ID:          "1",
			URI:         "spotify:track:1",
			Name:        "Digital Love",
			ArtistNames: []string{"Daft Punk"},
			Album:       model.Album{Name: "Discovery"},
			DurationMs:  301000,
		},
		{
			ID:          "2",
			URI:         "spotify:track:2",
			Name:        "Clint Eastwood",
			ArtistNames: []string{"Gorillaz"},
			Album:       model.Album{Name: "Gorillaz"},
			DurationMs:  340500,
		},
	}
}

func TestCreator_M3U(t *testing.T) {
	content := NewCreator(FormatM3U, false).Create("2001", createTestTracks())

	want := "spotify:track:1\nspotify:track:2\n"
	if content != want {
		t.Errorf("M3U = %q, want %q", content, want)
	}
}

func TestCreator_M3UExtended(t *testing.T) {
	content := NewCreator(FormatM3U, true).Create("2001", createTestTracks())

	if !strings.HasPrefix(content, "#EXTM3U\n") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:301,Daft Punk - Digital Love\n") {
		t.Errorf("Extended M3U missing EXTINF line:\n%s", content)
	}
	if !strings.Contains(content, "#EXTINF:340,Gorillaz - Clint Eastwood\n") {
		t.Errorf("Extended M3U should truncate durations to seconds:\n%s", content)
	}
}

func TestCreator_PLS(t *testing.T) {
	content := NewCreator(FormatPLS, false).Create("2001", createTestTracks())

	for _, want := range []string{
		"[playlist]\n",
		"File1=spotify:track:1\n",
		"Title2=Gorillaz - Clint Eastwood\n",
		"Length1=301\n",
		"NumberOfEntries=2\n",
		"Version=2\n",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("PLS missing %q", want)
		}
	}
}

func TestCreator_WPL(t *testing.T) {
	content := NewCreator(FormatWPL, false).Create("Daft Punk 2001", createTestTracks())

	if !strings.HasPrefix(content, "<?wpl") {
		t.Error("WPL should start with XML declaration")
	}
	if !strings.Contains(content, "<title>Daft Punk 2001</title>") {
		t.Error("WPL should contain title")
	}
	if strings.Count(content, "<media src=") != 2 {
		t.Error("WPL should contain one media element per track")
	}
}

func TestCreator_ZPL(t *testing.T) {
	content := NewCreator(FormatZPL, false).Create("2001", createTestTracks())

	if !strings.HasPrefix(content, "<?zpl") {
		t.Error("ZPL should start with XML declaration")
	}
	if !strings.Contains(content, `albumTitle="Discovery"`) {
		t.Error("ZPL should contain albumTitle attribute")
	}
	if !strings.Contains(content, `duration="301000"`) {
		t.Error("ZPL should carry durations in milliseconds")
	}
	if !strings.Contains(content, `content="2"`) {
		t.Error("ZPL should contain item count")
	}
}

func TestCreator_XMLEscape(t *testing.T) {
	tracks := []model.Track{{
		URI:         "spotify:track:x",
		Name:        `Track & "Quote"`,
		ArtistNames: []string{"Artist <Special>"},
	}}

	content := NewCreator(FormatZPL, false).Create("Rock & Roll", tracks)

	if strings.Contains(content, "<Special>") {
		t.Error("ZPL should escape < and >")
	}
	if !strings.Contains(content, "Rock &amp; Roll") {
		t.Error("ZPL should escape & as &amp;")
	}
	if !strings.Contains(content, "&quot;Quote&quot;") {
		t.Error("ZPL should escape quotes")
	}
}

func TestCreator_EmptyTracks(t *testing.T) {
	content := NewCreator(FormatPLS, false).Create("", nil)
	if !strings.Contains(content, "NumberOfEntries=0") {
		t.Errorf("PLS = %q, want zero entries", content)
	}
}

func TestCreator_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists", "out.m3u")

	if err := NewCreator(FormatM3U, false).Write(path, "2001", createTestTracks()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "spotify:track:2") {
		t.Errorf("written playlist = %q", data)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"m3u", FormatM3U, false},
		{"PLS", FormatPLS, false},
		{" wpl ", FormatWPL, false},
		{"zpl", FormatZPL, false},
		{"xspf", FormatM3U, true},
		{"", FormatM3U, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat_Ext(t *testing.T) {
	if got := FormatZPL.Ext(); got != ".zpl" {
		t.Errorf("Ext() = %q, want .zpl", got)
	}
	if got := Format(9).String(); got != "Format(9)" {
		t.Errorf("String() = %q, want Format(9)", got)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		pattern string
		artist  string
		year    int
		ext     string
		want    string
	}{
		{"{artist} {year}", "Daft Punk", 2001, ".m3u", "Daft Punk 2001.m3u"},
		{"{artist} - {year}", "AC/DC", 1980, ".pls", "AC_DC - 1980.pls"},
		{"timecrawl", "x", 1999, ".wpl", "timecrawl.wpl"},
		{"{year}/{year}", "x", 1999, ".zpl", "1999_1999.zpl"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FileName(tt.pattern, tt.artist, tt.year, tt.ext); got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}
