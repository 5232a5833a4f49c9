package domain

// User represents an account allowed to log in. Accounts are provisioned out
// of band; there is no registration endpoint.
//
// Passwords are stored and compared as plaintext. This is a known weakness
// inherited from the original system and is kept on purpose: hashing would
// change the observable login behavior.
type User struct {
	Username string
	Password string
}
