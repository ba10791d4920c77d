package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/handiism/timecrawl/internal/discovery"
	"github.com/handiism/timecrawl/internal/model"
)

type styles struct {
	title   lipgloss.Style
	info    lipgloss.Style
	verbose lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	success lipgloss.Style
}

func newStyles(w io.Writer) styles {
	if !shouldColorize(w) {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain}
	}

	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		info:    r.NewStyle().Foreground(lipgloss.Color("#A8DADC")),
		verbose: r.NewStyle().Foreground(lipgloss.Color("#6C757D")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#FFE66D")),
		err:     r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		success: r.NewStyle().Foreground(lipgloss.Color("#95E1A3")),
	}
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// progressPrinter renders crawl progress events, one per line.
type progressPrinter struct {
	w       io.Writer
	styles  styles
	verbose bool
}

func newProgressPrinter(w io.Writer, verbose bool) *progressPrinter {
	return &progressPrinter{w: w, styles: newStyles(w), verbose: verbose}
}

func (p *progressPrinter) handle(event discovery.ProgressEvent) {
	if event.Level == discovery.LevelVerbose && !p.verbose {
		return
	}

	var line string
	switch event.Level {
	case discovery.LevelError:
		line = p.styles.err.Render("✗ " + event.Message)
	case discovery.LevelWarning:
		line = p.styles.warning.Render("! " + event.Message)
	case discovery.LevelSuccess:
		line = p.styles.success.Render("✓ " + event.Message)
	case discovery.LevelInfo:
		line = p.styles.info.Render("• " + event.Message)
	default:
		line = p.styles.verbose.Render("  " + event.Message)
	}

	fmt.Fprintln(p.w, line)
}

func (p *progressPrinter) title(s string) {
	fmt.Fprintln(p.w, p.styles.title.Render(s))
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func renderTracks(tracks []model.Track) string {
	rows := make([][]string, 0, len(tracks))
	for i, t := range tracks {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			t.Name,
			t.Artists(),
			t.Album.Name,
			t.Album.ReleaseDate,
			t.Key(),
		})
	}
	return renderTable(
		[]string{"#", "Track", "Artists", "Album", "Released", "URI"},
		rows,
		[]columnAlignment{alignRight},
	)
}

func renderSummary(s styles, res *discovery.Result) string {
	line := fmt.Sprintf("%s: %d tracks after %d cycles, %d artists visited",
		res.Outcome, len(res.Tracks), res.Cycles, res.VisitedArtists)
	if res.Outcome == discovery.OutcomePartial {
		return s.warning.Render(line + " (" + res.Reason + ")")
	}
	return s.success.Render(line)
}
