package errprocess

import (
	"errors"
	"fmt"

	"gigconnect_client/pkg/logger"
)

// Kind 錯誤分類
type Kind string

const (
	// KindConnection duplex/transport level failure
	KindConnection Kind = "connection"
	// KindValidation rejected locally before any network call
	KindValidation Kind = "validation"
	// KindUpload file upload failed, the send is aborted
	KindUpload Kind = "upload"
	// KindAuthorization the server refused the operation; always authoritative
	KindAuthorization Kind = "authorization"
	// KindFetch REST fetch failed; loaded state stays intact
	KindFetch Kind = "fetch"
)

// ClientError carries the failure kind so the view layer can pick a surface
// (toast, inline notice, retry affordance).
type ClientError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// Unwrap support errors.Is / errors.As
func (e *ClientError) Unwrap() error {
	return e.Err
}

// Set set err info
func Set(errMsg string) error {
	logger.Log.Error(errMsg)
	return errors.New(errMsg)
}

// SetKind set err info with kind
func SetKind(kind Kind, msg string, cause error) error {
	e := &ClientError{Kind: kind, Msg: msg, Err: cause}
	logger.Log.Error(e.Error())
	return e
}

// KindOf returns the kind of a client error, or "" for foreign errors.
func KindOf(err error) Kind {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}
