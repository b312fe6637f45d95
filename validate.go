package argon2

// validateInputs enforces every bound in spec §4.C, in the same order as
// original_source/src/core.c's validate_inputs, returning the first violated
// bound as a *ValidationError so the caller can pinpoint the offending field.
// No allocation happens before this returns (§4.C: "All checks run before
// any allocation; no partial state is exposed on failure").
func validateInputs(ctx *Context) error {
	if ctx == nil {
		return &ValidationError{Code: ErrContextNil}
	}

	if ctx.Out == nil && ctx.OutLen != 0 {
		return &ValidationError{Code: ErrOutputNil}
	}
	if int(ctx.OutLen) < minOutLen {
		return &ValidationError{Code: ErrOutputTooShort, Got: int64(ctx.OutLen), Want: minOutLen}
	}
	if uint64(ctx.OutLen) > maxOutLen {
		return &ValidationError{Code: ErrOutputTooLong, Got: int64(ctx.OutLen), Want: maxOutLen}
	}

	if ctx.Password == nil {
		if ctx.PasswordLen != 0 {
			return &ValidationError{Code: ErrPasswordPtrMismatch}
		}
	} else if uint64(ctx.PasswordLen) > maxPwdLen {
		return &ValidationError{Code: ErrPasswordTooLong, Got: int64(ctx.PasswordLen), Want: maxPwdLen}
	}

	if ctx.Salt == nil {
		if ctx.SaltLen != 0 {
			return &ValidationError{Code: ErrSaltPtrMismatch}
		}
	} else {
		if int(ctx.SaltLen) < minSaltLen {
			return &ValidationError{Code: ErrSaltTooShort, Got: int64(ctx.SaltLen), Want: minSaltLen}
		}
		if uint64(ctx.SaltLen) > maxSaltLen {
			return &ValidationError{Code: ErrSaltTooLong, Got: int64(ctx.SaltLen), Want: maxSaltLen}
		}
	}

	if ctx.Secret == nil {
		if ctx.SecretLen != 0 {
			return &ValidationError{Code: ErrSecretPtrMismatch}
		}
	} else if uint64(ctx.SecretLen) > maxSecretLen {
		return &ValidationError{Code: ErrSecretTooLong, Got: int64(ctx.SecretLen), Want: maxSecretLen}
	}

	if ctx.AD == nil {
		if ctx.ADLen != 0 {
			return &ValidationError{Code: ErrAdPtrMismatch}
		}
	} else if uint64(ctx.ADLen) > maxAdLen {
		return &ValidationError{Code: ErrAdTooLong, Got: int64(ctx.ADLen), Want: maxAdLen}
	}

	if ctx.MemoryCost < minMemoryKB {
		return &ValidationError{Code: ErrMemoryTooLittle, Got: int64(ctx.MemoryCost), Want: minMemoryKB}
	}
	if uint64(ctx.MemoryCost) > maxMemoryKB {
		return &ValidationError{Code: ErrMemoryTooMuch, Got: int64(ctx.MemoryCost), Want: maxMemoryKB}
	}

	if ctx.TimeCost < minTimeCost {
		return &ValidationError{Code: ErrTimeTooSmall, Got: int64(ctx.TimeCost), Want: minTimeCost}
	}

	if ctx.Lanes < minLanes {
		return &ValidationError{Code: ErrLanesTooFew, Got: int64(ctx.Lanes), Want: minLanes}
	}
	if uint64(ctx.Lanes) > maxLanes {
		return &ValidationError{Code: ErrLanesTooMany, Got: int64(ctx.Lanes), Want: maxLanes}
	}

	// m_cost >= 8*lanes (spec §4.C); the final multiple-of-lanes*4 alignment
	// happens later in instance.go, but the minimum must hold here.
	if uint64(ctx.MemoryCost) < 8*uint64(ctx.Lanes) {
		return &ValidationError{Code: ErrMemoryTooLittle, Got: int64(ctx.MemoryCost), Want: int64(8 * ctx.Lanes)}
	}

	if ctx.Threads < minThreads {
		return &ValidationError{Code: ErrThreadsTooFew, Got: int64(ctx.Threads), Want: minThreads}
	}
	if uint64(ctx.Threads) > maxThreads {
		return &ValidationError{Code: ErrThreadsTooMany, Got: int64(ctx.Threads), Want: maxThreads}
	}

	if ctx.Type != TypeArgon2d && ctx.Type != TypeArgon2i {
		return &ValidationError{Code: ErrIncorrectType}
	}

	if ctx.Allocate != nil && ctx.Free == nil {
		return &ValidationError{Code: ErrFreeCbkNil}
	}
	if ctx.Allocate == nil && ctx.Free != nil {
		return &ValidationError{Code: ErrAllocateCbkNil}
	}

	return nil
}
