package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// GenerateDeviceHash derives a stable device fingerprint from the request's
// network address and User-Agent header. The two values are concatenated
// (address first, no separator) and digested with SHA-256, rendered as
// lowercase hex. The hash is returned to clients, so it carries no secret;
// it groups requests from the same device and is never used as a key.
func GenerateDeviceHash(ipAddress, userAgent string) string {
	sum := sha256.Sum256([]byte(ipAddress + userAgent))
	return hex.EncodeToString(sum[:])
}
