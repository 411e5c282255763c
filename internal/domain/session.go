package domain

import "time"

// Session - состояние сессии, передаваемое в гейт явным значением.
// Resolved == false означает, что внешний провайдер ещё не ответил.
type Session struct {
	UserID   string
	Role     Role
	Resolved bool
	// Err - ошибка разрешения сессии; при Err != nil доступ всегда запрещён
	Err error
}

// UnresolvedSession - сессия, ожидающая ответа провайдера идентификации
func UnresolvedSession() Session {
	return Session{}
}

// AnonymousSession - разрешённая сессия без входа в систему
func AnonymousSession() Session {
	return Session{Role: RoleUnauthenticated, Resolved: true}
}

// ResolvedSession - разрешённая сессия пользователя с ролью
func ResolvedSession(userID string, role Role) Session {
	return Session{UserID: userID, Role: role, Resolved: true}
}

// FailedSession - сессия, разрешение которой завершилось ошибкой
func FailedSession(err error) Session {
	return Session{Resolved: true, Err: err}
}

// SessionStatus - статус записи сессии у провайдера
type SessionStatus string

const (
	SessionStatusPending SessionStatus = "pending"
	SessionStatusActive  SessionStatus = "active"
)

// SessionRecord - запись сессии, как её хранит внешний провайдер
type SessionRecord struct {
	UserID    string        `json:"user_id"`
	Role      string        `json:"role"`
	Status    SessionStatus `json:"status"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// Expired проверяет срок действия записи
func (r *SessionRecord) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}
