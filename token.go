package tinkoff

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// requestToken computes the Token field for a request: the SHA-256 hex
// digest of every top-level scalar value concatenated in ascending key
// order, with Password (the secret key) and TerminalKey mixed in. Nested
// objects and arrays do not participate — that is how the gateway defines
// the signature, so a request differing only inside Receipt or DATA carries
// the same token.
func requestToken(params map[string]any, terminalKey, secretKey string) string {
	scalars := make(map[string]string, len(params)+2)
	for key, value := range params {
		if s, ok := scalarString(value); ok {
			scalars[key] = s
		}
	}
	scalars["TerminalKey"] = terminalKey
	scalars["Password"] = secretKey

	keys := make([]string, 0, len(scalars))
	for key := range scalars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(scalars[key])
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// scalarString renders a scalar parameter value the way it is signed.
// It reports false for nested objects and arrays.
func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int:
		return strconv.Itoa(v), true
	case bool:
		return strconv.FormatBool(v), true
	case map[string]any, []map[string]any, []any:
		return "", false
	default:
		return fmt.Sprint(v), true
	}
}
