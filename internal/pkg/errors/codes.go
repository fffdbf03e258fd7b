package errors

import "net/http"

var (
	ErrValidation = New(
		"VALIDATION_ERROR",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrRouteEndpointsRequired = New(
		"ROUTE_ENDPOINTS_REQUIRED",
		"Start and end parameters are required.",
		http.StatusBadRequest,
	)

	ErrUpstreamProvider = New(
		"UPSTREAM_PROVIDER_ERROR",
		"Google Directions API Error",
		http.StatusInternalServerError,
	)

	ErrInvalidLegData = New(
		"INVALID_LEG_DATA",
		"Directions provider returned an incomplete route leg",
		http.StatusBadGateway,
	)

	ErrMalformedPolyline = New(
		"MALFORMED_POLYLINE",
		"Encoded polyline is malformed",
		http.StatusUnprocessableEntity,
	)

	ErrEmptyRouteSet = New(
		"EMPTY_ROUTE_SET",
		"Route set is empty",
		http.StatusConflict,
	)

	ErrIndexOutOfRange = New(
		"INDEX_OUT_OF_RANGE",
		"Route index is out of range",
		http.StatusBadRequest,
	)

	ErrIncompleteSelection = New(
		"INCOMPLETE_SELECTION",
		"Please select items and calculate route.",
		http.StatusBadRequest,
	)

	ErrWarehouseMismatch = New(
		"WAREHOUSE_MISMATCH",
		"All selected items must belong to the same warehouse",
		http.StatusBadRequest,
	)

	ErrDialogNotFound = New(
		"DIALOG_NOT_FOUND",
		"Request dialog not found",
		http.StatusNotFound,
	)

	ErrDialogAlreadyOpen = New(
		"DIALOG_ALREADY_OPEN",
		"A request dialog is already open for this NGO",
		http.StatusConflict,
	)

	ErrStaleCalculation = New(
		"STALE_CALCULATION",
		"Route calculation was superseded by a newer request",
		http.StatusConflict,
	)

	ErrMapNotReady = New(
		"MAP_NOT_READY",
		"Map is not ready yet",
		http.StatusServiceUnavailable,
	)

	ErrBackend = New(
		"BACKEND_ERROR",
		"Backend request failed",
		http.StatusBadGateway,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
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
