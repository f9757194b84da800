package user

import (
	"os"
	"os/user"
)

// SuggestedName returns the current system username as a registration hint.
// It falls back to the USER environment variable and finally to "".
func SuggestedName() string {
	currentUser, err := user.Current()
	if err == nil && currentUser.Username != "" {
		return currentUser.Username
	}
	return os.Getenv("USER")
}
