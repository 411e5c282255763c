package access

import "github.com/tourism-directory/internal/domain"

var everyone = []domain.Role{
	domain.RoleUnauthenticated,
	domain.RoleTourist,
	domain.RoleBusinessOwner,
	domain.RoleTourismAdmin,
	domain.RoleBusinessListingManager,
	domain.RoleTourismContentManager,
}

// DefaultRules - таблица экранов туристического каталога, кабинета бизнеса и админ-панели
func DefaultRules() []Rule {
	return []Rule{
		{Route: "/auth", Roles: everyone},
		{Route: domain.RouteUnauthorized, Roles: everyone},
		{Route: domain.RouteDirectory, Roles: everyone},

		{Route: "/tourist", Roles: []domain.Role{domain.RoleTourist}},

		{Route: domain.RouteBusiness, Roles: []domain.Role{domain.RoleBusinessOwner}},
		{Route: domain.RouteBusinessShops, Roles: []domain.Role{
			domain.RoleBusinessOwner,
			domain.RoleBusinessListingManager,
		}},
		{Route: domain.RouteBusinessProducts, Roles: []domain.Role{
			domain.RoleBusinessOwner,
			domain.RoleBusinessListingManager,
		}},

		{Route: domain.RouteAdmin, Roles: []domain.Role{domain.RoleTourismAdmin}},
		{Route: domain.RouteAdminTouristSpots, Roles: []domain.Role{
			domain.RoleTourismAdmin,
			domain.RoleTourismContentManager,
		}},
		{Route: domain.RouteAdminEvents, Roles: []domain.Role{
			domain.RoleTourismAdmin,
			domain.RoleTourismContentManager,
		}},
		{Route: domain.RouteAdminBusinessListings, Roles: []domain.Role{
			domain.RoleTourismAdmin,
			domain.RoleBusinessListingManager,
		}},
	}
}

// DefaultPolicy строит политику по встроенной таблице
func DefaultPolicy(opts Options) (*Policy, error) {
	return NewPolicy(DefaultRules(), opts)
}
