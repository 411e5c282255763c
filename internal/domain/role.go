package domain

import (
	"fmt"
	"strings"
)

// Role - класс прав, назначенный сессии. Активна ровно одна роль на сессию.
type Role string

const (
	RoleUnauthenticated        Role = "unauthenticated"
	RoleTourist                Role = "tourist"
	RoleBusinessOwner          Role = "business_owner"
	RoleTourismAdmin           Role = "tourism_admin"
	RoleBusinessListingManager Role = "business_listing_manager"
	RoleTourismContentManager  Role = "tourism_content_manager"
)

// AllRoles - закрытое перечисление ролей
var AllRoles = []Role{
	RoleUnauthenticated,
	RoleTourist,
	RoleBusinessOwner,
	RoleTourismAdmin,
	RoleBusinessListingManager,
	RoleTourismContentManager,
}

// ParseRole нормализует строку и проверяет, что роль известна
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
