// Package entities contains core business entities.
package entities

import "time"

// Role enumerates member role states.
type Role string

const (
	// RoleCommon marks a regular member.
	RoleCommon Role = "UsuarioComum"
	// RoleLeader marks a member leading a group.
	RoleLeader Role = "LiderCelula"
	// RoleAdmin is the synthetic administrative identity; never persisted.
	RoleAdmin Role = "Administrador"
)

// Member is a domain representation of a registered person.
type Member struct {
	ID             int64
	FullName       string
	BirthDate      *time.Time
	Email          string
	Phone          string
	PasswordHash   string
	Role           Role
	InGroup        bool
	GroupID        *int64
	Baptized       bool
	AttendedCoffee bool
	InMinistry     bool
	MinistryName   *string
	Courses        Courses
	RecoveryToken  *string

	// Display-only fields filled by joined reads.
	GroupName  *string
	LeaderName *string
}

// Courses is the enumerated set of completed-course flags.
type Courses struct {
	MeuNovoCaminho bool
	VidaDevocional bool
	FamiliaCrista  bool
	VidaProspera   bool
}

// Profile is the normalized payload returned on login.
type Profile struct {
	ID      *int64
	Name    string
	Role    Role
	GroupID *int64
}

// NewMember holds validated registration input before hashing and insertion.
type NewMember struct {
	FullName       string
	BirthDate      *time.Time
	Email          string
	Phone          string
	Password       string
	Role           Role
	InGroup        bool
	GroupID        *int64
	Baptized       bool
	AttendedCoffee bool
	InMinistry     bool
	MinistryName   *string
	Courses        Courses
}

// MemberUpdate carries the partial field set for an update; nil means untouched.
type MemberUpdate struct {
	FullName       *string
	BirthDate      *time.Time
	Email          *string
	Phone          *string
	Password       *string
	PasswordHash   *string
	InGroup        *bool
	GroupID        *int64
	Baptized       *bool
	AttendedCoffee *bool
	InMinistry     *bool
	MinistryName   *string
	Courses        CoursesUpdate
}

// CoursesUpdate mirrors Courses with nil-able flags for partial updates.
type CoursesUpdate struct {
	MeuNovoCaminho *bool
	VidaDevocional *bool
	FamiliaCrista  *bool
	VidaProspera   *bool
}

// Empty reports whether the update touches no column.
func (m MemberUpdate) Empty() bool {
	return m.FullName == nil && m.BirthDate == nil && m.Email == nil &&
		m.Phone == nil && m.Password == nil && m.PasswordHash == nil &&
		m.InGroup == nil && m.GroupID == nil && m.Baptized == nil &&
		m.AttendedCoffee == nil && m.InMinistry == nil && m.MinistryName == nil &&
		m.Courses.MeuNovoCaminho == nil && m.Courses.VidaDevocional == nil &&
		m.Courses.FamiliaCrista == nil && m.Courses.VidaProspera == nil
}
