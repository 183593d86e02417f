package uuidgen

import (
	"os"
	"strings"
	"unicode"
)

const envPrefix = "${env."

// expandEnv replaces ${env.KEY} with the value of environment variable KEY.
// Unset keys, and the empty key in ${env.}, expand to "". A prefix followed by
// a key with characters other than letters, digits or '_' is kept literally;
// an unterminated expression keeps the rest of the input as is.
func expandEnv(value string) string {
	var b strings.Builder
	i := 0
	for {
		idx := strings.Index(value[i:], envPrefix)
		if idx < 0 {
			b.WriteString(value[i:])
			break
		}
		b.WriteString(value[i : i+idx])
		keyStart := i + idx + len(envPrefix)
		keyLen := strings.IndexByte(value[keyStart:], '}')
		if keyLen < 0 {
			b.WriteString(value[i+idx:])
			break
		}
		key := value[keyStart : keyStart+keyLen]
		if !isEnvKey(key) {
			b.WriteString(envPrefix)
			i = keyStart
			continue
		}
		b.WriteString(os.Getenv(key))
		i = keyStart + keyLen + 1
	}
	return b.String()
}

func isEnvKey(key string) bool {
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}
