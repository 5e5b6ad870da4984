package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Admin permissions
	PermissionReadAdmin = "admin:read"

	// Account permissions
	PermissionWalletRead       = "wallet:read"
	PermissionTransactionRead  = "transaction:read"
	PermissionTransactionWrite = "transaction:write"

	// Fraud review permissions
	PermissionFraudRead = "fraud:read"
)

// UserClaims are carried in bearer tokens issued by the external auth
// service; this service only validates them.
type UserClaims struct {
	jwt.RegisteredClaims
	AccountID   string   `json:"account_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
