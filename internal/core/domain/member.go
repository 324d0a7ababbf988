package domain

import "github.com/shopspring/decimal"

// MemberRole is the role a member holds in the cooperative.
type MemberRole string

const (
	RoleAdmin     MemberRole = "ADMIN"
	RolePresident MemberRole = "PRESIDENT"
	RoleSecretary MemberRole = "SECRETARY"
	RoleMember    MemberRole = "MEMBER"
)

// Valid reports whether r is a known role.
func (r MemberRole) Valid() bool {
	switch r {
	case RoleAdmin, RolePresident, RoleSecretary, RoleMember:
		return true
	}
	return false
}

// IsManager reports whether the role may run management commands.
func (r MemberRole) IsManager() bool {
	return r == RoleAdmin || r == RolePresident || r == RoleSecretary
}

// MemberStatus marks whether a member is still participating.
type MemberStatus string

const (
	MemberActive   MemberStatus = "active"
	MemberInactive MemberStatus = "inactive"
)

func (s MemberStatus) Valid() bool {
	return s == MemberActive || s == MemberInactive
}

// Member is a participant of the cooperative. Shares are never stored; see ledger.ShareCount.
type Member struct {
	ID                     string          `json:"id"`
	FullName               string          `json:"fullName"`
	Email                  string          `json:"email"`
	Phone                  string          `json:"phone"`
	Role                   MemberRole      `json:"role"`
	JoinedDate             Date            `json:"joinedDate"`
	Status                 MemberStatus    `json:"status"`
	HistoricalContribution decimal.Decimal `json:"historicalContribution"` // funds recorded before the system existed
	HistoricalProfit       decimal.Decimal `json:"historicalProfit"`       // dividends recorded before the system existed
}

// FindMember returns the member with the given id.
func FindMember(members []Member, id string) (Member, bool) {
	for _, m := range members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// Actor identifies who is calling a command or query.
type Actor struct {
	MemberID string     `json:"memberId"`
	Role     MemberRole `json:"role"`
}

// CanSee reports whether the actor may view data owned by memberID.
func (a Actor) CanSee(memberID string) bool {
	return a.Role.IsManager() || a.MemberID == memberID
}
