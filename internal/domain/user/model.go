package user

// Role identifies which part of the system an account may operate.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCSR      Role = "csr"
	RolePIN      Role = "pin"
	RolePlatform Role = "platform"
)

// Status gates whether an account may log in.
type Status string

const (
	StatusActive    Status = "Active"
	StatusSuspended Status = "Suspended"
)

// Account is a user profile. Password holds a bcrypt hash for accounts
// created here; records imported from older data may still carry plaintext.
type Account struct {
	ID        int    `json:"id"`
	UID       string `json:"uid"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
	Status    Status `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Profile is the password-free projection returned by the API.
type Profile struct {
	ID        int    `json:"id"`
	UID       string `json:"uid"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Role      Role   `json:"role"`
	Status    Status `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Public returns the account without its credential material.
func (a Account) Public() Profile {
	return Profile{
		ID:        a.ID,
		UID:       a.UID,
		FullName:  a.FullName,
		Email:     a.Email,
		Username:  a.Username,
		Role:      a.Role,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
