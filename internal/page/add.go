// Package page holds the state of the two client pages, decoupled from
// any UI toolkit:
//
//   - AddSchool: the creation form and its one-shot submission.
//   - ShowSchools: the list fetched once per visit and its live filter.
//
// A page value belongs to one page visit and is driven from a single
// goroutine; it is not safe for concurrent use.
package page

import (
	"context"

	"github.com/aanand-mishra/schools-directory/internal/form"
	"github.com/aanand-mishra/schools-directory/internal/types"
)

// Messages shown by AddSchool.
const (
	MsgSchoolAdded = "School added successfully!"
	MsgSubmitError = "Error adding school. Please try again."
)

// Creator sends a create request to the schools API.
type Creator interface {
	CreateSchool(ctx context.Context, req types.CreateSchoolRequest) error
}

// AddSchool is the state of the "add school" page.
type AddSchool struct {
	api Creator

	Draft          form.SchoolDraft
	Errors         form.Errors
	Submitting     bool
	SuccessMessage string
	SubmitError    string
}

// NewAddSchool returns the page as it is on mount: empty draft, no errors.
func NewAddSchool(api Creator) *AddSchool {
	return &AddSchool{
		api:    api,
		Errors: form.Errors{},
	}
}

// SetField records user input for field and drops that field's error.
func (p *AddSchool) SetField(field, value string) {
	p.Draft = p.Draft.With(field, value)
	p.Errors = p.Errors.Clear(field)
}

// Submit validates the draft and, if it is valid, sends exactly one create
// request. It reports whether the school was created.
//
// Any earlier submit error is dropped as soon as validation runs. A call
// while a previous submission is still in flight is refused.
func (p *AddSchool) Submit(ctx context.Context) bool {
	if p.Submitting {
		return false
	}

	p.SubmitError = ""
	p.Errors = form.Validate(p.Draft)
	if !p.Errors.Valid() {
		return false
	}

	p.Submitting = true
	p.SuccessMessage = ""
	defer func() { p.Submitting = false }()

	req, err := p.Draft.Request()
	if err == nil {
		err = p.api.CreateSchool(ctx, req)
	}
	if err != nil {
		p.SubmitError = MsgSubmitError
		return false
	}

	p.SuccessMessage = MsgSchoolAdded
	p.Draft = form.SchoolDraft{}
	return true
}
