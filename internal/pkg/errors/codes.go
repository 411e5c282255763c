package errors

import "net/http"

var (
	ErrPOINotFound = New(
		"POI_NOT_FOUND",
		"Point of interest not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidPOIKind = New(
		"INVALID_POI_KIND",
		"Invalid point of interest kind",
		http.StatusBadRequest,
	)

	ErrInvalidRankingMode = New(
		"INVALID_RANKING_MODE",
		"Invalid ranking mode",
		http.StatusBadRequest,
	)

	ErrInvalidRating = New(
		"INVALID_RATING",
		"Rating score must be between 1 and 5",
		http.StatusBadRequest,
	)

	ErrInvalidRoute = New(
		"INVALID_ROUTE",
		"Invalid route identifier",
		http.StatusBadRequest,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Session not found",
		http.StatusUnauthorized,
	)

	ErrSessionExpired = New(
		"SESSION_EXPIRED",
		"Session expired",
		http.StatusUnauthorized,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Sign in required",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Access denied",
		http.StatusForbidden,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrStreamError = New(
		"STREAM_ERROR",
		"Event publishing failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
