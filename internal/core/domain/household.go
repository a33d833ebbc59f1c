package domain

// HouseholdMember is one entry of the closed household roster. The member id
// is what clients send with every mutation; the email is the stable lookup key
// for the backing user record.
type HouseholdMember struct {
	ID    string
	Name  string
	Email string
}

// HouseholdMembers is the full roster. Adding a member to the household means
// adding a row here; nothing else in the codebase depends on the specific
// members.
var HouseholdMembers = []HouseholdMember{
	{ID: "abhinav", Name: "Abhinav", Email: "abhinav@family.local"},
	{ID: "kanika", Name: "Kanika", Email: "kanika@family.local"},
}

// MemberByID looks up a household member by id. The second return value is
// false when the id is not part of the roster.
func MemberByID(id string) (HouseholdMember, bool) {
	for _, member := range HouseholdMembers {
		if member.ID == id {
			return member, true
		}
	}
	return HouseholdMember{}, false
}
