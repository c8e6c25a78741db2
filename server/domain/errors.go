package domain

// ErrorKind groups business errors by how a transport should report them.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindCapacity
	KindPersistence
	KindUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindCapacity:
		return "capacity"
	case KindPersistence:
		return "persistence"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Error is a business error with a client-visible code.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrHostcodeRequired  = &Error{Kind: KindValidation, Code: "HOSTCODE_REQUIRED", Message: "hostcode is required"}
	ErrSessionIDRequired = &Error{Kind: KindValidation, Code: "SESSION_ID_REQUIRED", Message: "session id is required"}
	ErrDeviceIDRequired  = &Error{Kind: KindValidation, Code: "DEVICE_ID_REQUIRED", Message: "device id is required"}
	ErrVideoIDRequired   = &Error{Kind: KindValidation, Code: "VIDEO_ID_REQUIRED", Message: "video id is required"}
	ErrGenreRequired     = &Error{Kind: KindValidation, Code: "GENRE_REQUIRED", Message: "genre is required"}

	ErrInvalidHostcode = &Error{Kind: KindNotFound, Code: "INVALID_HOSTCODE", Message: "invalid hostcode"}
	ErrSessionNotFound = &Error{Kind: KindNotFound, Code: "SESSION_NOT_FOUND", Message: "session not found"}

	ErrCapacityExceeded = &Error{Kind: KindCapacity, Code: "CAPACITY_EXCEEDED", Message: "device limit reached, max 3: remove a device first"}

	ErrPersistence = &Error{Kind: KindPersistence, Code: "PERSISTENCE_ERROR", Message: "failed to persist sessions"}

	ErrNothingToPlay = &Error{Kind: KindUnavailable, Code: "NOTHING_TO_PLAY", Message: "queue is empty and random pool has no entries"}
)
