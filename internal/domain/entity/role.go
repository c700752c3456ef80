// Package entity contains the core business objects of the project.
package entity

// Role is the closed set of account role tags. Exactly one tag is stored per
// account and selects which profile the account carries and which platform
// privileges it holds.
type Role string

const (
	// RoleApplicant indicates a regular job-seeker account. Applicant
	// accounts may additionally hold recruiter links to companies.
	RoleApplicant Role = "applicant"
	// RoleRecruiter indicates an account created purely to recruit for
	// companies, without an applicant profile.
	RoleRecruiter Role = "recruiter"
	// RolePlatformAdmin indicates a platform administrator. Company admin
	// accounts carry this tag; company ownership itself is relational
	// (Company.AdminAccountID), not part of the tag.
	RolePlatformAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleApplicant, RoleRecruiter, RolePlatformAdmin:
		return true
	default:
		return false
	}
}
