package domain

type UserRole string

const (
	UserRoleClient  UserRole = "CLIENT"
	UserRoleAnalyst UserRole = "ANALYST"
	UserRoleAdmin   UserRole = "ADMIN"
)

// User is the single credential holder of the platform. Clients submit
// projects, analysts review them, admins approve them; the role decides
// which workflow operations are reachable.
type User struct {
	ID           int32    `json:"id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	PhoneNumber  string   `json:"phone_number"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AvatarURL    string   `json:"avatar_url,omitempty"`
	CreatedOn    string   `json:"created_on"`
}

func (u *User) IsAnalyst() bool { return u.Role == UserRoleAnalyst }
func (u *User) IsAdmin() bool   { return u.Role == UserRoleAdmin }
