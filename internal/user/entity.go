package user

const (
	defaultEmail = "N/A"
	defaultGroup = "User"
)

// User is an identity-provider account as shown to administrators.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Group    string `json:"group"`
}
