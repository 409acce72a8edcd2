// Package secrets loads the Pushover credentials once at start-up.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	AppKeyName  = "AppKey"
	UserKeyName = "UserKey"
)

var ErrMissingCredential = errors.New("missing credential")

type Credentials struct {
	AppKey  string
	UserKey string
}

type Loader interface {
	Load(ctx context.Context) (Credentials, error)
}

// FromParameters builds Credentials from a short-name to value mapping.
func FromParameters(params map[string]string) (Credentials, error) {
	creds := Credentials{
		AppKey:  params[AppKeyName],
		UserKey: params[UserKeyName],
	}
	return creds, creds.Validate()
}

func (c Credentials) Validate() error {
	var missing []string
	if c.AppKey == "" {
		missing = append(missing, AppKeyName)
	}
	if c.UserKey == "" {
		missing = append(missing, UserKeyName)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredential, strings.Join(missing, ", "))
	}
	return nil
}

// ShortName returns the last segment of a parameter path.
func ShortName(name string) string {
	return name[strings.LastIndex(name, "/")+1:]
}

type EnvLoader struct {
	AppKey  string
	UserKey string
}

func (l EnvLoader) Load(context.Context) (Credentials, error) {
	creds := Credentials{AppKey: l.AppKey, UserKey: l.UserKey}
	return creds, creds.Validate()
}
