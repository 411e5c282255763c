// Package access решает, может ли сессия перейти на экран приложения.
//
// Политика - декларативная таблица "маршрут -> роли". Совпадение маршрута
// ищется по сегментам, побеждает самый длинный префикс: правило "/admin"
// покрывает "/admin/events", а правило "/admin/dashboard" его переопределяет.
package access

import (
	"fmt"
	"sort"

	"github.com/tourism-directory/internal/domain"
)

// Effect - решение для маршрутов, которых нет в таблице
type Effect string

const (
	EffectAllow Effect = "allow"
	EffectDeny  Effect = "deny"
)

// ParseEffect разбирает значение из конфигурации; пустая строка - allow
func ParseEffect(s string) (Effect, error) {
	switch Effect(s) {
	case "", EffectAllow:
		return EffectAllow, nil
	case EffectDeny:
		return EffectDeny, nil
	}
	return "", fmt.Errorf("unknown default effect %q", s)
}

// Rule - одна строка таблицы политики
type Rule struct {
	Route domain.Route
	Roles []domain.Role
}

// Options - параметры политики помимо правил
type Options struct {
	DefaultEffect     Effect
	SignInRoute       domain.Route
	UnauthorizedRoute domain.Route
}

// DefaultOptions - открытый доступ к неописанным маршрутам и стандартные экраны редиректа
func DefaultOptions() Options {
	return Options{
		DefaultEffect:     EffectAllow,
		SignInRoute:       domain.RouteSignIn,
		UnauthorizedRoute: domain.RouteUnauthorized,
	}
}

// Policy - неизменяемая таблица доступа
type Policy struct {
	rules map[domain.Route]map[domain.Role]struct{}
	// routes отсортированы по убыванию длины для поиска самого длинного префикса
	routes []domain.Route
	opts   Options
}

// NewPolicy проверяет правила и строит политику.
// Пустой набор ролей, неизвестная роль, дубликат маршрута или недостижимый
// экран редиректа - ошибка конфигурации.
func NewPolicy(rules []Rule, opts Options) (*Policy, error) {
	if opts.DefaultEffect == "" {
		opts.DefaultEffect = EffectAllow
	}
	if opts.DefaultEffect != EffectAllow && opts.DefaultEffect != EffectDeny {
		return nil, fmt.Errorf("unknown default effect %q", opts.DefaultEffect)
	}
	if opts.SignInRoute == "" {
		opts.SignInRoute = domain.RouteSignIn
	}
	if opts.UnauthorizedRoute == "" {
		opts.UnauthorizedRoute = domain.RouteUnauthorized
	}

	p := &Policy{
		rules: make(map[domain.Route]map[domain.Role]struct{}, len(rules)),
		opts:  opts,
	}

	for _, rule := range rules {
		route, err := domain.ParseRoute(string(rule.Route))
		if err != nil {
			return nil, fmt.Errorf("policy rule: %w", err)
		}
		if _, dup := p.rules[route]; dup {
			return nil, fmt.Errorf("policy rule %s: duplicate route", route)
		}
		if len(rule.Roles) == 0 {
			return nil, fmt.Errorf("policy rule %s: allowed roles must not be empty", route)
		}

		allowed := make(map[domain.Role]struct{}, len(rule.Roles))
		for _, role := range rule.Roles {
			if !role.Valid() {
				return nil, fmt.Errorf("policy rule %s: unknown role %q", route, role)
			}
			allowed[role] = struct{}{}
		}

		p.rules[route] = allowed
		p.routes = append(p.routes, route)
	}

	sort.SliceStable(p.routes, func(i, j int) bool {
		return len(p.routes[i]) > len(p.routes[j])
	})

	if !p.permits(opts.SignInRoute, domain.RoleUnauthenticated) {
		return nil, fmt.Errorf("sign-in route %s is not reachable for %s", opts.SignInRoute, domain.RoleUnauthenticated)
	}
	for _, role := range domain.AllRoles {
		if role == domain.RoleUnauthenticated {
			continue
		}
		if !p.permits(opts.UnauthorizedRoute, role) {
			return nil, fmt.Errorf("unauthorized route %s is not reachable for %s", opts.UnauthorizedRoute, role)
		}
	}

	return p, nil
}

// Match возвращает правило, покрывающее маршрут (самый длинный префикс)
func (p *Policy) Match(route domain.Route) (domain.Route, bool) {
	for _, candidate := range p.routes {
		if route.HasPrefix(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// Allowed возвращает роли, которым открыт маршрут; false - маршрута нет в таблице
func (p *Policy) Allowed(route domain.Route) ([]domain.Role, bool) {
	matched, ok := p.Match(route)
	if !ok {
		return nil, false
	}
	return sortedRoles(p.rules[matched]), true
}

func (p *Policy) permits(route domain.Route, role domain.Role) bool {
	matched, ok := p.Match(route)
	if !ok {
		return p.opts.DefaultEffect == EffectAllow
	}
	_, allowed := p.rules[matched][role]
	return allowed
}

// Rules возвращает таблицу в порядке маршрутов
func (p *Policy) Rules() []Rule {
	out := make([]Rule, 0, len(p.rules))
	for route, roles := range p.rules {
		out = append(out, Rule{Route: route, Roles: sortedRoles(roles)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Route < out[j].Route })
	return out
}

func (p *Policy) Options() Options {
	return p.opts
}

func sortedRoles(set map[domain.Role]struct{}) []domain.Role {
	out := make([]domain.Role, 0, len(set))
	for _, role := range domain.AllRoles {
		if _, ok := set[role]; ok {
			out = append(out, role)
		}
	}
	return out
}
