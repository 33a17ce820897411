package page

import (
	"context"
	"fmt"
	"strings"

	"github.com/aanand-mishra/schools-directory/internal/types"
)

// Messages shown by ShowSchools.
const (
	MsgLoadError      = "Error loading schools. Please try again."
	MsgNoMatches      = "Try adjusting your search terms"
	MsgNoSchoolsYet   = "Be the first to add a school!"
	MsgNoSchoolsFound = "No schools found"
)

// Lister fetches every school from the schools API.
type Lister interface {
	ListSchools(ctx context.Context) ([]types.School, error)
}

// ShowSchools is the state of the school directory page.
type ShowSchools struct {
	api       Lister
	activated bool

	Schools []types.School
	Loading bool
	Error   string
	Search  string
}

// NewShowSchools returns the page before activation; it starts loading.
func NewShowSchools(api Lister) *ShowSchools {
	return &ShowSchools{
		api:     api,
		Loading: true,
	}
}

// Activate runs when the page becomes active. The first call fetches the
// list once; later calls on the same page do nothing.
func (p *ShowSchools) Activate(ctx context.Context) {
	if p.activated {
		return
	}
	p.activated = true
	defer func() { p.Loading = false }()

	schools, err := p.api.ListSchools(ctx)
	if err != nil {
		p.Error = MsgLoadError
		return
	}
	p.Schools = schools
}

// SetSearch updates the live search term.
func (p *ShowSchools) SetSearch(term string) {
	p.Search = term
}

// Visible returns the schools matching the current search term.
func (p *ShowSchools) Visible() []types.School {
	return Filter(p.Schools, p.Search)
}

// Summary is the "Showing N of M schools" line.
func (p *ShowSchools) Summary() string {
	return fmt.Sprintf("Showing %d of %d schools", len(p.Visible()), len(p.Schools))
}

// EmptyHint is the hint shown when no school is visible.
func (p *ShowSchools) EmptyHint() string {
	if p.Search != "" {
		return MsgNoMatches
	}
	return MsgNoSchoolsYet
}

// Filter returns, in their original order, the schools whose name, city or
// state contains term, ignoring case. An empty term returns schools as is.
// The input slice is never modified.
func Filter(schools []types.School, term string) []types.School {
	if term == "" {
		return schools
	}

	needle := strings.ToLower(term)
	out := make([]types.School, 0, len(schools))
	for _, s := range schools {
		if strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(strings.ToLower(s.City), needle) ||
			strings.Contains(strings.ToLower(s.State), needle) {
			out = append(out, s)
		}
	}
	return out
}
