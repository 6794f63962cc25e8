package envvar

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Vars holds environment variables in KEY=value form.
type Vars struct {
	vars []string
}

func (this *Vars) FromEnv() {
	this.vars = os.Environ()
}

func (this *Vars) FromSlice(slice []string) error {
	for i, kv := range slice {
		if !strings.Contains(kv, "=") {
			return &FormatError{index: i, value: kv}
		}
	}
	this.vars = slice
	return nil
}

func (this *Vars) FromMap(m map[string]string) {
	this.vars = make([]string, 0, len(m))
	for k, v := range m {
		this.vars = append(this.vars, k+"="+v)
	}
}

// ToMap converts the variables to a map. When a key is listed more
// than once, the first entry wins like in Lookup.
func (this *Vars) ToMap() map[string]string {
	m := make(map[string]string, len(this.vars))
	for _, kv := range this.vars {
		k, v, found := strings.Cut(kv, "=")
		if !found {
			panic(fmt.Sprintf("no '=' in env var '%s'", kv))
		}
		if _, exists := m[k]; !exists {
			m[k] = v
		}
	}
	return m
}

func (this *Vars) Lookup(key string) (string, bool) {
	prefix := key + "="
	for _, kv := range this.vars {
		if v, found := strings.CutPrefix(kv, prefix); found {
			return v, true
		}
	}
	return "", false
}

func (this *Vars) Get(key string) string {
	v, _ := this.Lookup(key)
	return v
}

func (this *Vars) GetOr(key string, alternative string) string {
	if v, ok := this.Lookup(key); ok {
		return v
	}
	return alternative
}

func (this *Vars) GetForApp(appName, varName string) string {
	return this.Get(AppKey(appName, varName))
}

func (this *Vars) GetForAppOr(appName, varName string, alternative string) string {
	return this.GetOr(AppKey(appName, varName), alternative)
}

// GetIntForAppOr parses the app variable as an integer.
// The alternative is returned when the variable is unset or empty.
func (this *Vars) GetIntForAppOr(appName, varName string, alternative int) (int, error) {
	key := AppKey(appName, varName)
	v := strings.TrimSpace(this.Get(key))
	if v == "" {
		return alternative, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return alternative, fmt.Errorf("invalid integer in %s: %w", key, err)
	}
	return i, nil
}

// AppKey builds the variable name for an app specific setting,
// e.g. AppKey("my-app", "LOG_LEVEL") == "MY_APP_LOG_LEVEL".
func AppKey(appName, varName string) string {
	if strings.TrimSpace(appName) != appName {
		panic("whitespace around app name is not allowed")
	}
	if appName == "" {
		panic("empty app name is not allowed")
	}
	prefix := strings.NewReplacer("-", "_", " ", "_").Replace(appName)
	return strings.ToUpper(prefix) + "_" + varName
}

type FormatError struct {
	index int
	value string
}

func (this *FormatError) Index() int {
	return this.index
}

func (this *FormatError) Value() string {
	return this.value
}

func (this *FormatError) Error() string {
	return fmt.Sprintf(
		"invalid var format at index %d: %s",
		this.index, this.value,
	)
}
