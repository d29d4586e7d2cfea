// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"github.com/gin-gonic/gin"
)

// Identity represents the authenticated staff member.
type Identity interface {
	UserID() string
	HasRole(role string) bool
	IsAuthenticated() bool
}

type identity struct {
	userID        string
	roles         []string
	authenticated bool
}

func (i *identity) UserID() string {
	return i.userID
}

func (i *identity) HasRole(role string) bool {
	for _, r := range i.roles {
		if r == role {
			return true
		}
	}
	return false
}

func (i *identity) IsAuthenticated() bool {
	return i.authenticated
}

// GetIdentity extracts the Identity set by AuthRequired.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	userID, ok := c.Get(ContextUserIDKey)
	if !ok {
		return &identity{authenticated: false}
	}

	uid, ok := userID.(string)
	if !ok || uid == "" {
		return &identity{authenticated: false}
	}

	var roleList []string
	if roles, ok := c.Get(ContextRolesKey); ok {
		roleList, _ = roles.([]string)
	}

	return &identity{
		userID:        uid,
		roles:         roleList,
		authenticated: true,
	}
}
