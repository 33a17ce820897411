// Package form models the "add school" form: the draft being edited, the
// per-field validation errors and the pure transitions between them.
package form

import (
	"fmt"
	"strconv"

	"github.com/aanand-mishra/schools-directory/internal/types"
)

// Form field names. They double as the keys of Errors.
const (
	FieldName    = "name"
	FieldAddress = "address"
	FieldCity    = "city"
	FieldState   = "state"
	FieldContact = "contact"
	FieldEmail   = "email"
	FieldImage   = "image"
)

// Fields lists every form field in display order.
var Fields = []string{
	FieldName,
	FieldAddress,
	FieldCity,
	FieldState,
	FieldContact,
	FieldEmail,
	FieldImage,
}

// SchoolDraft is the client-side form state. Every value is kept exactly
// as typed; Contact is only converted to a number by Request.
//
// The validate tags are the form rules, see Validate.
type SchoolDraft struct {
	Name    string `json:"name"    validate:"notblank"`
	Address string `json:"address" validate:"notblank"`
	City    string `json:"city"    validate:"notblank"`
	State   string `json:"state"   validate:"notblank"`
	Contact string `json:"contact" validate:"notblank,contact10"`
	Email   string `json:"email"   validate:"notblank,emailshape"`
	Image   string `json:"image"`
}

// With returns a copy of d with field set to value. Unknown fields leave
// the draft unchanged.
func (d SchoolDraft) With(field, value string) SchoolDraft {
	switch field {
	case FieldName:
		d.Name = value
	case FieldAddress:
		d.Address = value
	case FieldCity:
		d.City = value
	case FieldState:
		d.State = value
	case FieldContact:
		d.Contact = value
	case FieldEmail:
		d.Email = value
	case FieldImage:
		d.Image = value
	}
	return d
}

// Get returns the current value of field.
func (d SchoolDraft) Get(field string) string {
	switch field {
	case FieldName:
		return d.Name
	case FieldAddress:
		return d.Address
	case FieldCity:
		return d.City
	case FieldState:
		return d.State
	case FieldContact:
		return d.Contact
	case FieldEmail:
		return d.Email
	case FieldImage:
		return d.Image
	}
	return ""
}

// Request builds the POST body from a validated draft. Contact is parsed
// as a 64-bit integer; the draft's email is sent as email_id.
func (d SchoolDraft) Request() (types.CreateSchoolRequest, error) {
	contact, err := strconv.ParseInt(d.Contact, 10, 64)
	if err != nil {
		return types.CreateSchoolRequest{}, fmt.Errorf("form: parse contact: %w", err)
	}

	return types.CreateSchoolRequest{
		Name:    d.Name,
		Address: d.Address,
		City:    d.City,
		State:   d.State,
		Contact: &contact,
		Image:   d.Image,
		EmailID: d.Email,
	}, nil
}

// Errors maps a field name to its validation message. An empty Errors
// means the draft may be submitted.
type Errors map[string]string

// Valid reports whether no rule was violated.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Clear returns a copy of e without the entry for field. It is applied as
// soon as the user edits a field; the field is not re-validated until the
// next submit.
func (e Errors) Clear(field string) Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		if k != field {
			out[k] = v
		}
	}
	return out
}
