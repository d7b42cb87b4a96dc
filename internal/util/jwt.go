package util

import (
	"time"
	"ujikom_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID   uint           `json:"user_id"`
	Role     model.UserRole `json:"role"`
	Peran    string         `json:"peran,omitempty"`
	JobSites []string       `json:"job_sites,omitempty"`
	jwt.RegisteredClaims
}

func GenerateJWT(user *model.User, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)

	claims := &Claims{
		UserID:   user.ID,
		Role:     user.Role,
		Peran:    user.Peran,
		JobSites: user.JobSites,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, err
}

func GetUserFromContext(c *gin.Context) *Claims {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}
	claims, ok := user.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// IsMasterAdmin reports whether the authenticated caller is a master
// admin (full cross-site access).
func (c *Claims) IsMasterAdmin() bool {
	return c.Role == model.RoleAdmin && c.Peran == model.PeranMasterAdmin
}

// CanAccessSite reports whether the caller may read or write data for
// the given job site. Master admins see everything; regular admins are
// limited to their assigned sites.
func (c *Claims) CanAccessSite(site string) bool {
	if c.Role != model.RoleAdmin {
		return false
	}
	if c.Peran == model.PeranMasterAdmin {
		return true
	}
	for _, s := range c.JobSites {
		if s == site {
			return true
		}
	}
	return false
}
