package helper

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

func ResolveEnv(in string) string {
	if strings.HasPrefix(in, "ENV:") {
		return os.Getenv(in[4:])
	}
	return in
}

func SetDefaultStringIfEmpty(value, defaultValue, field, scope string) string {
	if len(value) == 0 {
		log.Debugf("no %s specified for %s, assuming default %q", field, scope, defaultValue)
		return defaultValue
	}
	return value
}
