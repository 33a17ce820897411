// Package types holds the data structures shared by the backend and the
// client. Keeping them in one place prevents import cycles: handlers,
// storage, the API client and the pages all import types without
// depending on each other.
package types

// PlaceholderImage is shown for schools that were saved without an image.
const PlaceholderImage = "https://placehold.co/400x300/e5e7eb/9ca3af?text=School+Image"

// School is a stored school record as returned by GET /api/schools/.
//
// Contact is int64: a 10-digit phone number does not fit in int32.
type School struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Contact int64  `json:"contact"`
	Image   string `json:"image"`
	EmailID string `json:"email_id"`
}

// ImageURL returns the school's image, or the placeholder when none was set.
func (s School) ImageURL() string {
	if s.Image == "" {
		return PlaceholderImage
	}
	return s.Image
}

// CreateSchoolRequest is the body of POST /api/schools/create/.
//
// The validate tags are checked by the backend with go-playground/validator.
// Image is optional. Contact is a pointer so that a missing contact is
// rejected while 0 is still a valid number.
type CreateSchoolRequest struct {
	Name    string `json:"name"     validate:"required"`
	Address string `json:"address"  validate:"required"`
	City    string `json:"city"     validate:"required"`
	State   string `json:"state"    validate:"required"`
	Contact *int64 `json:"contact"  validate:"required"`
	Image   string `json:"image"`
	EmailID string `json:"email_id" validate:"required"`
}

// School converts the request into the record that gets stored. A nil
// Contact becomes 0.
func (r CreateSchoolRequest) School() School {
	var contact int64
	if r.Contact != nil {
		contact = *r.Contact
	}

	return School{
		Name:    r.Name,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		Contact: contact,
		Image:   r.Image,
		EmailID: r.EmailID,
	}
}
