package envsubst

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Matches ${KEY} and the escaped form $${KEY}
var referenceRe = regexp.MustCompile(`\$?\$\{([^}]+)\}`)

// Replace substitutes ${KEY} references in text with values from vars.
// The escaped form $${KEY} is left in the text as ${KEY}. References to
// missing keys are replaced with an empty string and reported in a KeyError.
func Replace(text string, vars map[string]string) (string, error) {
	var missing []string
	s := referenceRe.ReplaceAllStringFunc(text, func(ref string) string {
		if strings.HasPrefix(ref, "$$") {
			return ref[1:]
		}
		key := strings.TrimSpace(ref[2 : len(ref)-1])
		v, ok := vars[key]
		if !ok && !slices.Contains(missing, key) {
			missing = append(missing, key)
		}
		return v
	})

	if len(missing) == 0 {
		return s, nil
	}
	return s, &KeyError{keys: missing}
}

type KeyError struct {
	keys []string
}

// MissingKeys lists the unknown keys in the order they first appeared.
func (this *KeyError) MissingKeys() []string {
	return this.keys
}

func (this *KeyError) Error() string {
	return fmt.Sprintf("no value found for keys: %s", strings.Join(this.keys, ", "))
}
