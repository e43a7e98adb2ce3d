package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJDDataValidate(t *testing.T) {
	jd := &JDData{
		ClientName:         "Acme Corp",
		JDTitle:            "Backend Engineer",
		RequiredExperience: "3+",
		PrimarySkills:      []string{"Go", "SQL"},
	}
	assert.NoError(t, jd.Validate())

	assert.Error(t, (&JDData{JDTitle: "Backend Engineer"}).Validate())
	assert.Error(t, (&JDData{ClientName: "Acme Corp"}).Validate())
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "a@b.com", Password: "pw"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "not-an-email", Password: "pw"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "a@b.com"}).Validate())
}

func TestCompanyCreateValidate(t *testing.T) {
	c := &CompanyCreate{
		Name:          "Acme Corp",
		AdminEmail:    "admin@acme.com",
		AdminPassword: "longenough",
	}
	assert.NoError(t, c.Validate())

	c.AdminPassword = "short"
	assert.Error(t, c.Validate())
}

func TestUserCreateValidate(t *testing.T) {
	u := &UserCreate{
		Email:     "user@acme.com",
		Password:  "longenough",
		Name:      "User One",
		CompanyID: "550e8400-e29b-41d4-a716-446655440000",
	}
	assert.NoError(t, u.Validate())

	u.CompanyID = "not-a-uuid"
	assert.Error(t, u.Validate())
}

func TestUserUpdateValidate(t *testing.T) {
	role := "company_admin"
	assert.NoError(t, (&UserUpdate{Role: &role}).Validate())

	bad := "super_admin"
	assert.Error(t, (&UserUpdate{Role: &bad}).Validate())

	empty := &UserUpdate{}
	assert.NoError(t, empty.Validate())
}

func TestUpdateJDRequestValidate(t *testing.T) {
	r := &UpdateJDRequest{
		RequiredExperience: "2-4",
		PrimarySkills:      []string{"Go"},
	}
	assert.NoError(t, r.Validate())

	assert.Error(t, (&UpdateJDRequest{PrimarySkills: []string{"Go"}}).Validate())
}
