package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tenantguard-be/models"
)

func testLandlord() *models.Landlord {
	return &models.Landlord{Name: "Acme Rentals", Email: "owner@acme.test", Phone: "(514) 555-1234"}
}

func TestLandlordContactView_Anonymous(t *testing.T) {
	view := LandlordContactView(nil, nil, testLandlord())
	assert.True(t, view.Locked)
	assert.Nil(t, view.Landlord)
}

func TestLandlordContactView_NeverLeaksWhenUnapproved(t *testing.T) {
	user := primitive.NewObjectID()
	other := primitive.NewObjectID()

	claims := map[string]*models.PropertyClaim{
		"no claim":             nil,
		"pending":              {UserID: user, Status: models.ClaimPending},
		"rejected":             {UserID: user, Status: models.ClaimRejected},
		"approved other user":  {UserID: other, Status: models.ClaimApproved},
		"unknown status value": {UserID: user, Status: "maybe"},
	}
	landlords := map[string]*models.Landlord{
		"full":     testLandlord(),
		"nameless": {Email: "x@y.test", Phone: "5551234567"},
		"none":     nil,
	}

	for cname, claim := range claims {
		for lname, landlord := range landlords {
			t.Run(cname+"/"+lname, func(t *testing.T) {
				view := LandlordContactView(&user, claim, landlord)
				assert.True(t, view.Locked)
				if view.Landlord != nil {
					assert.Nil(t, view.Landlord.Email)
					assert.Nil(t, view.Landlord.PhoneMasked)
				}

				body, err := json.Marshal(view)
				require.NoError(t, err)
				if landlord != nil {
					assert.NotContains(t, string(body), landlord.Email)
					assert.NotContains(t, string(body), "1234")
				}
			})
		}
	}
}

func TestLandlordContactView_UnapprovedShowsTeaserName(t *testing.T) {
	user := primitive.NewObjectID()
	view := LandlordContactView(&user, nil, &models.Landlord{Phone: "555"})
	require.NotNil(t, view.Landlord)
	assert.Equal(t, DefaultLandlordName, view.Landlord.Name)
}

func TestLandlordContactView_Approved(t *testing.T) {
	user := primitive.NewObjectID()
	claim := &models.PropertyClaim{UserID: user, Status: models.ClaimApproved}

	view := LandlordContactView(&user, claim, testLandlord())
	assert.False(t, view.Locked)
	require.NotNil(t, view.Landlord)
	assert.Equal(t, "Acme Rentals", view.Landlord.Name)
	require.NotNil(t, view.Landlord.Email)
	assert.Equal(t, "owner@acme.test", *view.Landlord.Email)
	require.NotNil(t, view.Landlord.PhoneMasked)
	assert.Equal(t, "***-***-1234", *view.Landlord.PhoneMasked)
}

func TestLandlordContactView_ApprovedWithoutLandlord(t *testing.T) {
	user := primitive.NewObjectID()
	claim := &models.PropertyClaim{UserID: user, Status: models.ClaimApproved}

	view := LandlordContactView(&user, claim, nil)
	assert.False(t, view.Locked)
	assert.Nil(t, view.Landlord)
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "***-***-1234", MaskPhone("+1 (514) 555-1234"))
	assert.Equal(t, "***-***-6789", MaskPhone("6789"))
	assert.Equal(t, "***", MaskPhone("12-3"))
	assert.Equal(t, "***", MaskPhone(""))
}
