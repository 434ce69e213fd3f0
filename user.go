package hostcfg

// PasswordMask replaces a User's password whenever the User leaves its store.
const PasswordMask = "********"

// A User owns a collection of Configurations and authenticates with a name and password.
//
// Passwords are stored and compared as plain text.
type User struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Scrub returns a copy of the User with its password replaced by PasswordMask.
func (u User) Scrub() User {
	return User{Name: u.Name, Password: PasswordMask}
}

// GetName exposes the User's name to log contexts.
func (u User) GetName() string { return u.Name }
