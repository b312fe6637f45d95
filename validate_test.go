package argon2

import (
	"errors"
	"testing"
)

func baseContext() *Context {
	return &Context{
		Config: Config{
			Type:       TypeArgon2d,
			TimeCost:   3,
			MemoryCost: 16,
			Lanes:      1,
			Threads:    1,
		},
		Out:      make([]byte, 32),
		OutLen:   32,
		Password: []byte("password"), PasswordLen: 8,
		Salt: []byte("somesalt"), SaltLen: 8,
	}
}

func TestValidateInputsAccepts(t *testing.T) {
	ctx := baseContext()
	if err := validateInputs(ctx); err != nil {
		t.Fatalf("expected valid context, got %v", err)
	}
}

func TestValidateInputsNilContext(t *testing.T) {
	if err := validateInputs(nil); err == nil {
		t.Fatal("expected error for nil context")
	}
}

func TestValidateInputsPasswordPtrMismatch(t *testing.T) {
	ctx := baseContext()
	ctx.Password = nil
	ctx.PasswordLen = 5
	err := validateInputs(ctx)
	assertCode(t, err, ErrPasswordPtrMismatch)
}

func TestValidateInputsSaltTooShort(t *testing.T) {
	ctx := baseContext()
	ctx.Salt = []byte("short12")
	ctx.SaltLen = 7
	err := validateInputs(ctx)
	assertCode(t, err, ErrSaltTooShort)
}

func TestValidateInputsSecretTooLong(t *testing.T) {
	ctx := baseContext()
	ctx.Secret = make([]byte, 33)
	ctx.SecretLen = 33
	err := validateInputs(ctx)
	assertCode(t, err, ErrSecretTooLong)
}

func TestValidateInputsOutputTooShort(t *testing.T) {
	ctx := baseContext()
	ctx.Out = make([]byte, 3)
	ctx.OutLen = 3
	err := validateInputs(ctx)
	assertCode(t, err, ErrOutputTooShort)
}

func TestValidateInputsMemoryTooSmallForLanes(t *testing.T) {
	ctx := baseContext()
	ctx.Lanes = 4
	ctx.MemoryCost = 16 // less than 8*4=32
	err := validateInputs(ctx)
	assertCode(t, err, ErrMemoryTooLittle)
}

func TestValidateInputsIncorrectType(t *testing.T) {
	ctx := baseContext()
	ctx.Type = Type(99)
	err := validateInputs(ctx)
	assertCode(t, err, ErrIncorrectType)
}

func TestValidateInputsAllocatorCallbackPairing(t *testing.T) {
	ctx := baseContext()
	ctx.Allocate = func(n int) ([]byte, error) { return make([]byte, n), nil }
	err := validateInputs(ctx)
	assertCode(t, err, ErrFreeCbkNil)

	ctx2 := baseContext()
	ctx2.Free = func([]byte) {}
	err = validateInputs(ctx2)
	assertCode(t, err, ErrAllocateCbkNil)
}

func TestValidateInputsZeroLanesAndThreads(t *testing.T) {
	ctx := baseContext()
	ctx.Lanes = 0
	err := validateInputs(ctx)
	assertCode(t, err, ErrLanesTooFew)

	ctx2 := baseContext()
	ctx2.Threads = 0
	err = validateInputs(ctx2)
	assertCode(t, err, ErrThreadsTooFew)
}

func assertCode(t *testing.T, err error, want ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %v, got nil", want)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	if ve.Code != want {
		t.Fatalf("error code = %v, want %v", ve.Code, want)
	}
}
