package handler

const (
	errInternalServer     = "Internal server error"
	errUserNotFound       = "User not found"
	errCardNotFound       = "Card not found"
	errEmailTaken         = "Email already registered"
	errInvalidCredentials = "Invalid email or password"
	errWeakPassword       = "Password is too weak"
	errNotCardOwner       = "Not allowed to delete another user's card"
	errInvalidID          = "Invalid id"
)
