package domain

// Outcome - итог проверки доступа
type Outcome string

const (
	OutcomeAllowed Outcome = "allowed"
	OutcomeDenied  Outcome = "denied"
	OutcomePending Outcome = "pending"
)

// DenyReason - причина отказа. Наружу не отдаётся, используется для логов.
type DenyReason string

const (
	ReasonNone            DenyReason = ""
	ReasonRoleNotAllowed  DenyReason = "role_not_allowed"
	ReasonUnauthenticated DenyReason = "unauthenticated"
	ReasonSessionError    DenyReason = "session_error"
	ReasonInvalidRoute    DenyReason = "invalid_route"
	ReasonDefaultDeny     DenyReason = "default_deny"
)

// AccessDecision - решение гейта для одной попытки навигации
type AccessDecision struct {
	Outcome  Outcome
	Redirect Route
	Reason   DenyReason
}

func (d AccessDecision) Allowed() bool {
	return d.Outcome == OutcomeAllowed
}

func (d AccessDecision) Denied() bool {
	return d.Outcome == OutcomeDenied
}

func (d AccessDecision) Pending() bool {
	return d.Outcome == OutcomePending
}
