package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

// M matches strings either exactly or against a regular expression.
// A spec written as /pattern/ is a regular expression. The empty
// matcher matches everything.
//
// M implements flag.Value.
type M struct {
	pattern *regexp.Regexp
	spec    string
}

func FromString(s string) (matcher M, err error) {
	err = matcher.FromString(s)
	return
}

func (this *M) FromString(s string) error {
	if len(s) >= 2 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") {
		pattern, err := regexp.Compile(s[1 : len(s)-1])
		if err != nil {
			return fmt.Errorf("invalid matcher regex %s: %w", s, err)
		}
		this.pattern = pattern
		this.spec = s[1 : len(s)-1]
		return nil
	}
	this.pattern = nil
	this.spec = s
	return nil
}

func (this *M) Set(s string) error {
	return this.FromString(s)
}

func (this *M) String() string {
	if this.UsesRegex() {
		return "/" + this.spec + "/"
	}
	return this.spec
}

func (this *M) IsEmpty() bool {
	return this.pattern == nil && this.spec == ""
}

func (this *M) UsesRegex() bool {
	return this.pattern != nil
}

func (this *M) MatchString(s string) bool {
	switch {
	case this.IsEmpty():
		return true
	case this.UsesRegex():
		return this.pattern.MatchString(s)
	default:
		return this.spec == s
	}
}
