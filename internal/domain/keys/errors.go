package keys

import "errors"

// ErrKeyPairNotFound is returned when no key pair is registered under the requested ID
var ErrKeyPairNotFound = errors.New("key pair not found")
