package server

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUser(t *testing.T) {
	userID := uuid.New()
	companyID := uuid.New()

	r := httptest.NewRequest("GET", "/history", nil)
	r.Header.Set("X-User-Role", "user")
	r.Header.Set("X-User-Id", userID.String())
	r.Header.Set("X-Company-Id", companyID.String())

	id, err := currentUser(r)
	require.NoError(t, err)
	assert.Equal(t, "user", id.Role)
	assert.Equal(t, userID, id.UserID)
	assert.Equal(t, companyID, id.CompanyID)
	assert.NoError(t, id.requireCompany())
}

func TestCurrentUser_AlternativeHeaders(t *testing.T) {
	userID := uuid.New()

	r := httptest.NewRequest("GET", "/history", nil)
	r.Header.Set("User-Role", "company_admin")
	r.Header.Set("User-Id", userID.String())

	id, err := currentUser(r)
	require.NoError(t, err)
	assert.Equal(t, "company_admin", id.Role)
	assert.Equal(t, userID, id.UserID)
	assert.Error(t, id.requireCompany())
}

func TestCurrentUser_MissingHeaders(t *testing.T) {
	r := httptest.NewRequest("GET", "/history", nil)
	id, err := currentUser(r)
	assert.Nil(t, id)
	require.Error(t, err)
	assert.IsType(t, &ErrNotAuthenticated{}, err)
}

func TestCurrentUser_BadUserID(t *testing.T) {
	r := httptest.NewRequest("GET", "/history", nil)
	r.Header.Set("X-User-Role", "user")
	r.Header.Set("X-User-Id", "not-a-uuid")

	id, err := currentUser(r)
	assert.Nil(t, id)
	assert.Error(t, err)
}

func TestRequireSuperAdmin(t *testing.T) {
	r := httptest.NewRequest("POST", "/companies", nil)
	r.Header.Set("X-User-Role", "super_admin")
	assert.NoError(t, requireSuperAdmin(r))

	r.Header.Set("X-User-Role", "company_admin")
	err := requireSuperAdmin(r)
	require.Error(t, err)
	assert.IsType(t, &ErrForbidden{}, err)
}
