package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchool_ImageURL(t *testing.T) {
	assert.Equal(t, PlaceholderImage, School{}.ImageURL())
	assert.Equal(t, "https://x/y.jpg", School{Image: "https://x/y.jpg"}.ImageURL())
}

func TestCreateSchoolRequest_School(t *testing.T) {
	contact := int64(9876543210)
	req := CreateSchoolRequest{
		Name:    "Alpha High",
		Address: "1 Main Rd",
		City:    "Pune",
		State:   "MH",
		Contact: &contact,
		EmailID: "a@b.com",
	}

	s := req.School()

	assert.Zero(t, s.ID)
	assert.Equal(t, School{
		Name:    "Alpha High",
		Address: "1 Main Rd",
		City:    "Pune",
		State:   "MH",
		Contact: 9876543210,
		EmailID: "a@b.com",
	}, s)
}

func TestCreateSchoolRequest_SchoolZeroContact(t *testing.T) {
	zero := int64(0)

	assert.Equal(t, int64(0), CreateSchoolRequest{Contact: &zero}.School().Contact)
	assert.Equal(t, int64(0), CreateSchoolRequest{}.School().Contact)
}
