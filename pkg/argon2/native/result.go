package native

// Result is the status code returned by the native library,
// mirrors argon2_error_codes.
type Result int32

const (
	ResultOK                    Result = 0
	ResultOutputPtrNull         Result = -1
	ResultOutputTooShort        Result = -2
	ResultOutputTooLong         Result = -3
	ResultPwdTooShort           Result = -4
	ResultPwdTooLong            Result = -5
	ResultSaltTooShort          Result = -6
	ResultSaltTooLong           Result = -7
	ResultAdTooShort            Result = -8
	ResultAdTooLong             Result = -9
	ResultSecretTooShort        Result = -10
	ResultSecretTooLong         Result = -11
	ResultTimeTooSmall          Result = -12
	ResultTimeTooLarge          Result = -13
	ResultMemoryTooLittle       Result = -14
	ResultMemoryTooMuch         Result = -15
	ResultLanesTooFew           Result = -16
	ResultLanesTooMany          Result = -17
	ResultPwdPtrMismatch        Result = -18
	ResultSaltPtrMismatch       Result = -19
	ResultSecretPtrMismatch     Result = -20
	ResultAdPtrMismatch         Result = -21
	ResultMemoryAllocationError Result = -22
	ResultFreeMemoryCbkNull     Result = -23
	ResultAllocateMemoryCbkNull Result = -24
	ResultIncorrectParameter    Result = -25
	ResultIncorrectType         Result = -26
	ResultOutPtrMismatch        Result = -27
	ResultThreadsTooFew         Result = -28
	ResultThreadsTooMany        Result = -29
	ResultMissingArgs           Result = -30
	ResultEncodingFail          Result = -31
	ResultDecodingFail          Result = -32
	ResultThreadFail            Result = -33
	ResultDecodingLengthFail    Result = -34
	ResultVerifyMismatch        Result = -35
)

const unknownResult = "Unknown error code"

var messages = map[Result]string{
	ResultOK:                    "OK",
	ResultOutputPtrNull:         "Output pointer is NULL",
	ResultOutputTooShort:        "Output is too short",
	ResultOutputTooLong:         "Output is too long",
	ResultPwdTooShort:           "Password is too short",
	ResultPwdTooLong:            "Password is too long",
	ResultSaltTooShort:          "Salt is too short",
	ResultSaltTooLong:           "Salt is too long",
	ResultAdTooShort:            "Associated data is too short",
	ResultAdTooLong:             "Associated data is too long",
	ResultSecretTooShort:        "Secret is too short",
	ResultSecretTooLong:         "Secret is too long",
	ResultTimeTooSmall:          "Time cost is too small",
	ResultTimeTooLarge:          "Time cost is too large",
	ResultMemoryTooLittle:       "Memory cost is too small",
	ResultMemoryTooMuch:         "Memory cost is too large",
	ResultLanesTooFew:           "Too few lanes",
	ResultLanesTooMany:          "Too many lanes",
	ResultPwdPtrMismatch:        "Password pointer is NULL, but password length is not 0",
	ResultSaltPtrMismatch:       "Salt pointer is NULL, but salt length is not 0",
	ResultSecretPtrMismatch:     "Secret pointer is NULL, but secret length is not 0",
	ResultAdPtrMismatch:         "Associated data pointer is NULL, but ad length is not 0",
	ResultMemoryAllocationError: "Memory allocation error",
	ResultFreeMemoryCbkNull:     "The free memory callback is NULL",
	ResultAllocateMemoryCbkNull: "The allocate memory callback is NULL",
	ResultIncorrectParameter:    "Argon2_Context context is NULL",
	ResultIncorrectType:         "There is no such version of argon2",
	ResultOutPtrMismatch:        "Output pointer mismatch",
	ResultThreadsTooFew:         "Not enough threads",
	ResultThreadsTooMany:        "Too many threads",
	ResultMissingArgs:           "Missing arguments",
	ResultEncodingFail:          "Encoding failed",
	ResultDecodingFail:          "Decoding failed",
	ResultThreadFail:            "Threading failure",
	ResultDecodingLengthFail:    "Some of encoded parameters are too long or too short",
	ResultVerifyMismatch:        "The password does not match the supplied hash",
}

// Message returns the human readable description of a native
// result code.
func Message(r Result) string {
	if msg, ok := messages[r]; ok {
		return msg
	}
	return unknownResult
}

func (r Result) String() string {
	return Message(r)
}

func (r Result) OK() bool {
	return r == ResultOK
}
