package models

// User is the platform user record as returned by the auth endpoints.
// ProfileImageURL is optional and empty when the user has not uploaded one.
type User struct {
	Email           string `json:"email"`
	FirstName       string `json:"firstname"`
	LastName        string `json:"lastname"`
	Role            string `json:"role"`
	ProfileImageURL string `json:"profileimageurl,omitempty"`
}

// Merge returns a copy of u with the non-empty fields of partial applied.
func (u User) Merge(partial User) User {
	if partial.Email != "" {
		u.Email = partial.Email
	}
	if partial.FirstName != "" {
		u.FirstName = partial.FirstName
	}
	if partial.LastName != "" {
		u.LastName = partial.LastName
	}
	if partial.Role != "" {
		u.Role = partial.Role
	}
	if partial.ProfileImageURL != "" {
		u.ProfileImageURL = partial.ProfileImageURL
	}
	return u
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/signup.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// AuthResponse is returned by login, signup and profile update.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
