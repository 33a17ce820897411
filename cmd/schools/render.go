package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aanand-mishra/schools-directory/internal/page"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to the output writer, so colors are dropped when it is
// not a terminal.
type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
		muted:   r.NewStyle().Faint(true),
	}
}

func renderShowSchools(w io.Writer, p *page.ShowSchools) {
	st := newStyles(w)

	fmt.Fprintln(w, st.title.Render("School Directory"))

	if p.Loading {
		fmt.Fprintln(w, st.muted.Render("Loading schools..."))
		return
	}

	if p.Error != "" {
		fmt.Fprintln(w, st.failure.Render(p.Error))
	}

	visible := p.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(w, page.MsgNoSchoolsFound)
		fmt.Fprintln(w, st.muted.Render(p.EmptyHint()))
		return
	}

	fmt.Fprintln(w, p.Summary())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tADDRESS\tLOCATION\tIMAGE")
	for _, s := range visible {
		fmt.Fprintf(tw, "%s\t%s\t%s, %s\t%s\n", s.Name, s.Address, s.City, s.State, s.ImageURL())
	}
	tw.Flush()
}
