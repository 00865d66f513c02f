package models

import "github.com/golang-jwt/jwt/v5"

// SiteClaims represents the JWT claims the navigation API reads from an
// identity provider token.
type SiteClaims struct {
	jwt.RegisteredClaims                // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	Email                string         `json:"email"`
	Role                 string         `json:"role"`
	AppMetadata          map[string]any `json:"app_metadata"`
}

// GetUserID returns the user ID from the JWT subject claim.
func (c *SiteClaims) GetUserID() string {
	return c.Subject
}

// SiteRole returns the navigation role of the token holder.
// app_metadata.role takes precedence over the top-level role claim, which
// many providers reserve for their own "authenticated" marker.
func (c *SiteClaims) SiteRole() string {
	if role, ok := c.AppMetadata["role"].(string); ok && role != "" {
		return role
	}
	return c.Role
}
