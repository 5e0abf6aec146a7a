package errors

import "net/http"

var (
	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrPlaceAlreadyExists = New(
		"PLACE_ALREADY_EXISTS",
		"Place with this id already exists",
		http.StatusConflict,
	)

	ErrItineraryNotFound = New(
		"ITINERARY_NOT_FOUND",
		"Itinerary not found or expired",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrGenerationFailed = New(
		"GENERATION_FAILED",
		"Itinerary generation failed",
		http.StatusInternalServerError,
	)

	ErrRecommenderUnavailable = New(
		"RECOMMENDER_UNAVAILABLE",
		"Recommendation service is not available",
		http.StatusServiceUnavailable,
	)

	ErrTooManyRequests = New(
		"TOO_MANY_REQUESTS",
		"Too many requests, try again later",
		http.StatusTooManyRequests,
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

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
