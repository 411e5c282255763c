package access

import (
	"github.com/tourism-directory/internal/domain"
)

// Gate - проверка доступа для одной попытки навигации.
// Чистая функция от (route, session): без таймеров, без состояния между вызовами.
type Gate struct {
	policy *Policy
}

func NewGate(policy *Policy) *Gate {
	return &Gate{policy: policy}
}

// Policy возвращает таблицу, по которой работает гейт
func (g *Gate) Policy() *Policy {
	return g.policy
}

// CheckAccess решает, может ли сессия перейти на маршрут.
// Любая неоднозначность (ошибка сессии, неизвестная роль, битый маршрут) - отказ.
func (g *Gate) CheckAccess(route string, session domain.Session) domain.AccessDecision {
	if !session.Resolved {
		return domain.AccessDecision{Outcome: domain.OutcomePending}
	}

	opts := g.policy.opts

	if session.Err != nil || !session.Role.Valid() {
		return deny(opts.SignInRoute, domain.ReasonSessionError)
	}

	r, err := domain.ParseRoute(route)
	if err != nil {
		return deny(g.redirectFor(session.Role), domain.ReasonInvalidRoute)
	}

	matched, ok := g.policy.Match(r)
	if !ok {
		if opts.DefaultEffect == EffectAllow {
			return allow()
		}
		return deny(g.redirectFor(session.Role), domain.ReasonDefaultDeny)
	}

	if _, allowed := g.policy.rules[matched][session.Role]; allowed {
		return allow()
	}

	if session.Role == domain.RoleUnauthenticated {
		return deny(opts.SignInRoute, domain.ReasonUnauthenticated)
	}
	return deny(opts.UnauthorizedRoute, domain.ReasonRoleNotAllowed)
}

func (g *Gate) redirectFor(role domain.Role) domain.Route {
	if role == domain.RoleUnauthenticated {
		return g.policy.opts.SignInRoute
	}
	return g.policy.opts.UnauthorizedRoute
}

func allow() domain.AccessDecision {
	return domain.AccessDecision{Outcome: domain.OutcomeAllowed}
}

func deny(redirect domain.Route, reason domain.DenyReason) domain.AccessDecision {
	return domain.AccessDecision{
		Outcome:  domain.OutcomeDenied,
		Redirect: redirect,
		Reason:   reason,
	}
}
