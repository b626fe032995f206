package services

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"tenantguard-be/models"
)

// DefaultLandlordName is shown when the landlord record has no name.
const DefaultLandlordName = "Landlord / Property Manager"

// LandlordContact is the landlord block of a contact view. Email and
// PhoneMasked are only ever non-nil for approved tenants.
type LandlordContact struct {
	Name        string  `json:"name"`
	Email       *string `json:"email"`
	PhoneMasked *string `json:"phoneMasked"`
}

// ContactView is the payload of GET /properties/:id/landlordContact.
type ContactView struct {
	Locked   bool             `json:"locked"`
	Landlord *LandlordContact `json:"landlord"`
}

// LockedContactView is the shape returned whenever approval cannot be
// established.
func LockedContactView() ContactView {
	return ContactView{Locked: true}
}

// LandlordContactView decides what the requester may see of landlord.
//
//   - requester nil (anonymous): locked, no landlord block
//   - no approved claim for this requester: locked, name only
//   - approved claim: unlocked, name, email and masked phone
func LandlordContactView(requester *primitive.ObjectID, claim *models.PropertyClaim, landlord *models.Landlord) ContactView {
	if requester == nil {
		return LockedContactView()
	}

	approved := claim != nil && claim.UserID == *requester && claim.Status == models.ClaimApproved
	if landlord == nil {
		return ContactView{Locked: !approved}
	}

	contact := &LandlordContact{Name: landlordName(landlord)}
	if !approved {
		return ContactView{Locked: true, Landlord: contact}
	}

	if landlord.Email != "" {
		email := landlord.Email
		contact.Email = &email
	}
	if landlord.Phone != "" {
		masked := MaskPhone(landlord.Phone)
		contact.PhoneMasked = &masked
	}
	return ContactView{Locked: false, Landlord: contact}
}

// MaskPhone keeps the last four digits: "***-***-1234", or "***" when
// fewer than four digits are present.
func MaskPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) < 4 {
		return "***"
	}
	return "***-***-" + d[len(d)-4:]
}

func landlordName(l *models.Landlord) string {
	if name := strings.TrimSpace(l.Name); name != "" {
		return name
	}
	return DefaultLandlordName
}
