package models

// User is the authenticated account returned by OTP verification.
// It is owned by the session container and serialized into the
// key-value store under the userData key.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
