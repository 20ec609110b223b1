// ABOUTME: User model and the fixed list of seeded identities.
// ABOUTME: Emails double as the soft reference that events use for recordedBy.
package models

// User is a row of the users table.
type User struct {
	ID       int64  `db:"id" json:"id" yaml:"id"`
	Username string `db:"username" json:"username" yaml:"username"`
	Email    string `db:"email" json:"email" yaml:"email"`
}

// seedUsers is the literal list inserted on every run.
var seedUsers = []User{
	{Email: "alice@example.com", Username: "alice"},
	{Email: "bob@example.com", Username: "bob"},
	{Email: "carol@example.com", Username: "carol"},
	{Email: "dave@example.com", Username: "dave"},
	{Email: "eve@example.com", Username: "eve"},
}

// SeedUsers returns a copy of the seeded identities. IDs are zero; the store
// assigns them on insert.
func SeedUsers() []User {
	users := make([]User, len(seedUsers))
	copy(users, seedUsers)
	return users
}

// IsSeedEmail reports whether email belongs to one of the seeded users.
func IsSeedEmail(email string) bool {
	for _, u := range seedUsers {
		if u.Email == email {
			return true
		}
	}
	return false
}
