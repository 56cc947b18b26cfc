package hashutils

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

func generateHash(data string) string {
	hash := sha256.New()
	hash.Write([]byte(data))
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// GetCacheKey derives a stable KV bucket key from query parts.
func GetCacheKey(parts ...string) string {
	return generateHash(strings.Join(parts, "."))
}
