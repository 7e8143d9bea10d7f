package qr

import "errors"

// QR domain errors. Unknown, already-consumed and expired tokens all surface
// as ErrInvalidOrExpiredToken so a scanner learns nothing about which it was.
var (
	ErrInvalidOrExpiredToken = errors.New("invalid or expired QR code")
	ErrSubjectMismatch       = errors.New("QR code is not for this member")
	ErrTokenNotFound         = errors.New("QR request not found")
	ErrOnlyLeadsCanIssue     = errors.New("only leads can generate QR codes")
	ErrSubjectNotMember      = errors.New("QR codes can only be generated for members")
)
