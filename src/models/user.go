package models

import (
	"fmt"
	"strconv"
	"time"
)

type UserRole int

const (
	UserRoleAdmin UserRole = iota + 1
	UserRoleEditor
	UserRoleMember
)

var AllUserRoles = []UserRole{UserRoleAdmin, UserRoleEditor, UserRoleMember}

func (r UserRole) String() string {
	switch r {
	case UserRoleAdmin:
		return "admin"
	case UserRoleEditor:
		return "editor"
	case UserRoleMember:
		return "member"
	default:
		return "unknown"
	}
}

func ParseUserRole(str string) (UserRole, error) {
	// "contributor" survives in old client code as an alias for member.
	if str == "contributor" {
		return UserRoleMember, nil
	}
	for _, r := range AllUserRoles {
		if r.String() == str {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unrecognized user role: %q", str)
}

func (r UserRole) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}

func (r *UserRole) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	parsed, err := ParseUserRole(str)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

type UserStatus int

const (
	UserStatusPending  UserStatus = iota + 1 // Default for new users
	UserStatusVerified                       // Confirmed by an admin and counted as active
	UserStatusBanned
)

var AllUserStatuses = []UserStatus{UserStatusPending, UserStatusVerified, UserStatusBanned}

func (s UserStatus) String() string {
	switch s {
	case UserStatusPending:
		return "pending"
	case UserStatusVerified:
		return "verified"
	case UserStatusBanned:
		return "banned"
	default:
		return "unknown"
	}
}

func ParseUserStatus(str string) (UserStatus, error) {
	for _, s := range AllUserStatuses {
		if s.String() == str {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unrecognized user status: %q", str)
}

func (s UserStatus) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(s.String())), nil
}

func (s *UserStatus) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	parsed, err := ParseUserStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type User struct {
	ID int `db:"id" json:"id"`

	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`

	Role   UserRole   `db:"role" json:"role"`
	Status UserStatus `db:"status" json:"status"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

func (u *User) IsActive() bool {
	return u.Status == UserStatusVerified
}
