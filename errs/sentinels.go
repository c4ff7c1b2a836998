package errs

// Sentinel errors for the common fixed-message kinds, so callers can write
// errors.Is(err, errs.HumongousVarIntErr) the same way mebo's section package
// compares against errs.ErrInvalidHeaderSize.
var (
	HumongousVarIntErr = &Error{Kind: HumongousVarInt, Message: "exceeds maximum encoded byte width"}
	HumongousStringErr = &Error{Kind: HumongousString, Message: "exceeds representable length"}
	InvalidStringErr   = &Error{Kind: InvalidString, Message: "does not decode under the required encoding"}
)
