package fm

import "fmt"

// Data API message codes. The store reports "no records matched" and
// "invalid token" through distinct codes; the two must never be
// conflated, because one is benign and the other drives the retry.
const (
	codeOK            = "0"
	codeRecordMissing = "101"
	codeNoRecords     = "401"
	codeInvalidToken  = "952"
)

// apiError is a non-OK message envelope from the store, annotated with
// the HTTP status it arrived under.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("filemaker error %s (http %d): %s", e.Code, e.Status, e.Message)
}

// noRecords reports the benign "no records matched a find" case.
func (e *apiError) noRecords() bool {
	return e.Code == codeNoRecords
}

// recordMissing reports a get-by-id miss.
func (e *apiError) recordMissing() bool {
	return e.Code == codeRecordMissing || e.Code == codeNoRecords
}

// authExpired reports the signature that makes a request eligible for
// the single re-authentication retry: an HTTP 401 or the store's
// invalid-token code.
func (e *apiError) authExpired() bool {
	return e.Status == 401 || e.Code == codeInvalidToken
}
