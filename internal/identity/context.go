package identity

import (
	"sync"

	admindomain "github.com/nova-cps/club-services/api/internal/admin/domain"
)

// User is the principal supplied by the identity provider. The core only ever
// reads Email; the rest is display metadata.
type User struct {
	Email       string
	DisplayName string
	PictureURL  string
	UID         string
}

// Context holds the resolved identity of one signed-in principal. It is
// constructed explicitly (resolve on load) and passed by reference to the
// components that need it; SignOut is the teardown half of the lifecycle.
type Context struct {
	mu      sync.Mutex
	user    *User
	signOut func()
}

// NewContext wraps an already-authorized principal. signOut is invoked at most
// once, when the session is torn down.
func NewContext(user User, signOut func()) *Context {
	u := user
	return &Context{user: &u, signOut: signOut}
}

// ResolveApplicant applies the applicant eligibility policy to a freshly
// signed-in principal. An ineligible principal is signed out immediately so no
// partially authorized session survives, and no context is returned.
func ResolveApplicant(gate *Gate, user User, signOut func()) (*Context, error) {
	if !gate.IsEligibleApplicant(user.Email) {
		if signOut != nil {
			signOut()
		}
		return nil, admindomain.ErrUnauthorized
	}
	return NewContext(user, signOut), nil
}

// User returns the signed-in principal, or false after teardown.
func (c *Context) User() (User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return User{}, false
	}
	return *c.user, true
}

// Email returns the principal's email, or the empty string after teardown.
func (c *Context) Email() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return ""
	}
	return c.user.Email
}

// SignOut clears the session and runs the provider teardown hook exactly once.
func (c *Context) SignOut() {
	c.mu.Lock()
	hook := c.signOut
	c.user = nil
	c.signOut = nil
	c.mu.Unlock()
	if hook != nil {
		hook()
	}
}
