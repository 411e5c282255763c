package domain

import (
	"fmt"
	"strings"
)

// Route - идентификатор экрана навигации (абсолютный путь без query)
type Route string

// Известные экраны приложения
const (
	RouteHome         Route = "/"
	RouteDirectory    Route = "/directory"
	RouteShops        Route = "/directory/shops"
	RouteSpots        Route = "/directory/spots"
	RouteSignIn       Route = "/auth/sign-in"
	RouteUnauthorized Route = "/unauthorized"

	RouteTouristProfile   Route = "/tourist/profile"
	RouteTouristFavorites Route = "/tourist/favorites"
	RouteTouristReviews   Route = "/tourist/reviews"

	RouteBusiness          Route = "/business"
	RouteBusinessDashboard Route = "/business/dashboard"
	RouteBusinessShops     Route = "/business/shops"
	RouteBusinessProducts  Route = "/business/products"

	RouteAdmin                 Route = "/admin"
	RouteAdminDashboard        Route = "/admin/dashboard"
	RouteAdminTouristSpots     Route = "/admin/tourist-spots"
	RouteAdminEvents           Route = "/admin/events"
	RouteAdminBusinessListings Route = "/admin/business-listings"
	RouteAdminUsers            Route = "/admin/users"
)

// KnownRoutes - закрытый набор экранов, о которых знает приложение
var KnownRoutes = []Route{
	RouteHome, RouteDirectory, RouteShops, RouteSpots, RouteSignIn, RouteUnauthorized,
	RouteTouristProfile, RouteTouristFavorites, RouteTouristReviews,
	RouteBusiness, RouteBusinessDashboard, RouteBusinessShops, RouteBusinessProducts,
	RouteAdmin, RouteAdminDashboard, RouteAdminTouristSpots, RouteAdminEvents,
	RouteAdminBusinessListings, RouteAdminUsers,
}

// ParseRoute проверяет строку маршрута от роутера и приводит её к канонической форме.
// Завершающий слэш отбрасывается, "/admin/" == "/admin".
// Сегменты состоят только из [a-z0-9-_.]: регистр и percent-кодирование дали бы
// второе написание защищённого экрана, которое не совпадёт ни с одним правилом.
func ParseRoute(s string) (Route, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty route")
	}
	if !strings.HasPrefix(s, "/") {
		return "", fmt.Errorf("route %q must be an absolute path", s)
	}
	if strings.ContainsAny(s, "?#") {
		return "", fmt.Errorf("route %q must not contain query or fragment", s)
	}
	if s == "/" {
		return RouteHome, nil
	}

	s = strings.TrimSuffix(s, "/")
	for _, seg := range strings.Split(s[1:], "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", fmt.Errorf("route %q has an invalid segment", s)
		}
		for _, c := range seg {
			if !segmentChar(c) {
				return "", fmt.Errorf("route %q has invalid character %q", s, c)
			}
		}
	}

	return Route(s), nil
}

func segmentChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_', c == '.':
		return true
	}
	return false
}

// HasPrefix - совпадение по сегментам: "/admin" покрывает "/admin/x", но не "/administrator"
func (r Route) HasPrefix(prefix Route) bool {
	if prefix == RouteHome {
		return true
	}
	if r == prefix {
		return true
	}
	return strings.HasPrefix(string(r), string(prefix)+"/")
}

// Known сообщает, входит ли маршрут в перечень экранов приложения
func (r Route) Known() bool {
	for _, k := range KnownRoutes {
		if r == k {
			return true
		}
	}
	return false
}

func (r Route) String() string {
	return string(r)
}
