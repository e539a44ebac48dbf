package usecase

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrMalformedExternalReference = errors.New("malformed external reference")

const externalReferenceVersion = "v1"

// EncodeExternalReference builds the correlation token sent to the processor
// as external_reference. Both ids are base64url encoded, an alphabet without
// '.', so the token always splits back into exactly the original pair.
func EncodeExternalReference(userID, courseID string) string {
	enc := base64.RawURLEncoding
	return externalReferenceVersion + "." + enc.EncodeToString([]byte(userID)) + "." + enc.EncodeToString([]byte(courseID))
}

// ParseExternalReference reverses EncodeExternalReference.
//
// The legacy "{userId}_{courseId}" form is still accepted for preferences
// issued before the token existed, but only when it has a single underscore;
// anything else is ambiguous and rejected.
func ParseExternalReference(ref string) (userID, courseID string, err error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "", ErrMalformedExternalReference
	}

	if strings.HasPrefix(ref, externalReferenceVersion+".") {
		parts := strings.Split(ref, ".")
		if len(parts) != 3 {
			return "", "", ErrMalformedExternalReference
		}
		u, uErr := base64.RawURLEncoding.DecodeString(parts[1])
		c, cErr := base64.RawURLEncoding.DecodeString(parts[2])
		if uErr != nil || cErr != nil || len(u) == 0 || len(c) == 0 {
			return "", "", ErrMalformedExternalReference
		}
		return string(u), string(c), nil
	}

	if strings.Count(ref, "_") != 1 {
		return "", "", ErrMalformedExternalReference
	}
	userID, courseID, _ = strings.Cut(ref, "_")
	if userID == "" || courseID == "" {
		return "", "", ErrMalformedExternalReference
	}
	return userID, courseID, nil
}
