package argon2

import "strconv"

// ErrorCode identifies a specific validation or execution failure, mirroring
// the distinct ARGON2_* return codes of original_source/src/core.c so a
// caller can pinpoint the offending field instead of matching on a string.
type ErrorCode int

const (
	// ErrOK is never returned as an error; it exists so the zero value of
	// ErrorCode has a name.
	ErrOK ErrorCode = iota

	ErrContextNil
	ErrOutputNil
	ErrOutputTooShort
	ErrOutputTooLong
	ErrPasswordPtrMismatch
	ErrPasswordTooLong
	ErrSaltPtrMismatch
	ErrSaltTooShort
	ErrSaltTooLong
	ErrSecretPtrMismatch
	ErrSecretTooLong
	ErrAdPtrMismatch
	ErrAdTooLong
	ErrMemoryTooLittle
	ErrMemoryTooMuch
	ErrTimeTooSmall
	ErrLanesTooFew
	ErrLanesTooMany
	ErrThreadsTooFew
	ErrThreadsTooMany
	ErrIncorrectType
	ErrAllocateCbkNil
	ErrFreeCbkNil
	ErrMemoryAllocation
)

var errorText = map[ErrorCode]string{
	ErrOK:                  "ok",
	ErrContextNil:          "context is nil",
	ErrOutputNil:           "output buffer pointer is nil",
	ErrOutputTooShort:      "output length too short",
	ErrOutputTooLong:       "output length too long",
	ErrPasswordPtrMismatch: "password pointer is nil but length is nonzero",
	ErrPasswordTooLong:     "password too long",
	ErrSaltPtrMismatch:     "salt pointer is nil but length is nonzero",
	ErrSaltTooShort:        "salt too short",
	ErrSaltTooLong:         "salt too long",
	ErrSecretPtrMismatch:   "secret pointer is nil but length is nonzero",
	ErrSecretTooLong:       "secret too long",
	ErrAdPtrMismatch:       "associated data pointer is nil but length is nonzero",
	ErrAdTooLong:           "associated data too long",
	ErrMemoryTooLittle:     "memory cost too small",
	ErrMemoryTooMuch:       "memory cost too large",
	ErrTimeTooSmall:        "time cost too small",
	ErrLanesTooFew:         "too few lanes",
	ErrLanesTooMany:        "too many lanes",
	ErrThreadsTooFew:       "too few threads",
	ErrThreadsTooMany:      "too many threads",
	ErrIncorrectType:       "incorrect Argon2 type",
	ErrAllocateCbkNil:      "free callback is set but allocate callback is nil",
	ErrFreeCbkNil:          "allocate callback is set but free callback is nil",
	ErrMemoryAllocation:    "memory allocation failed",
}

// ValidationError reports a single out-of-bounds or inconsistent context
// field, following the shape of blockSizeError below: a small concrete
// struct implementing error rather than an opaque string, so callers can
// errors.As into it and branch on Code.
type ValidationError struct {
	Code ErrorCode
	// Got and Want describe the offending value and the violated bound, when
	// the failure is a bound violation rather than a shape mismatch. Want is
	// left at its zero value for pointer/length mismatches and type errors.
	Got, Want int64
}

func (e *ValidationError) Error() string {
	msg := errorText[e.Code]
	if e.Want == 0 && e.Got == 0 {
		return msg
	}
	return msg + ": got " + strconv.FormatInt(e.Got, 10) + ", bound " + strconv.FormatInt(e.Want, 10)
}

// blockSizeError is returned by block.fromBytes when given the wrong number
// of bytes. Kept distinct from ValidationError because it reports a
// programming-error shape mismatch internal to this package, not a caller
// input bound from the Context.
type blockSizeError struct {
	got, want int
}

func (e *blockSizeError) Error() string {
	return "argon2: invalid block size: got " + strconv.Itoa(e.got) + " bytes, want " + strconv.Itoa(e.want) + " bytes"
}

// fillError reports a fatal failure inside the fill loop (§7: "a failure
// inside the fill loop is treated as fatal"). The core never actually
// produces one today — there is no fallible step between validation and
// finalization — but the type exists so a future fallible G implementation
// (e.g. one backed by an external accelerator) has somewhere to report to
// without changing the Hash signature.
type fillError struct {
	pass, lane, slice uint32
	cause             error
}

func (e *fillError) Error() string {
	return "argon2: fill failed at pass " + strconv.Itoa(int(e.pass)) +
		" lane " + strconv.Itoa(int(e.lane)) +
		" slice " + strconv.Itoa(int(e.slice)) + ": " + e.cause.Error()
}

func (e *fillError) Unwrap() error { return e.cause }
