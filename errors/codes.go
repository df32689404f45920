package errors

// ErrorCode identifies a class of application error independent of transport.
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS

	// Extraction pipeline
	ErrorCode_LLM_NOT_CONFIGURED
	ErrorCode_EXTRACTION_FAILED
	ErrorCode_EXTRACTION_MALFORMED
	ErrorCode_TRANSCRIPTION_FAILED
	ErrorCode_CITATION_WRITE_FAILED

	// Case analysis
	ErrorCode_ANALYSIS_FAILED

	// Storage
	ErrorCode_DB_CONNECTION_FAILED
	ErrorCode_DB_QUERY_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                "UNKNOWN",
	ErrorCode_HTTP_OK:                "OK",
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:        "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:         "ALREADY_EXISTS",
	ErrorCode_LLM_NOT_CONFIGURED:     "LLM_NOT_CONFIGURED",
	ErrorCode_EXTRACTION_FAILED:      "EXTRACTION_FAILED",
	ErrorCode_EXTRACTION_MALFORMED:   "EXTRACTION_MALFORMED",
	ErrorCode_TRANSCRIPTION_FAILED:   "TRANSCRIPTION_FAILED",
	ErrorCode_CITATION_WRITE_FAILED:  "CITATION_WRITE_FAILED",
	ErrorCode_ANALYSIS_FAILED:        "ANALYSIS_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:   "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:        "DB_QUERY_FAILED",
}

// String returns the stable textual name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
