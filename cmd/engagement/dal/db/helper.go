package db

import (
	"strings"

	"VidTube.com/cmd/engagement/dal"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// translate maps gorm sentinels onto dal ones and wraps everything else.
func translate(err error, format string, args ...interface{}) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return dal.ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return dal.ErrDuplicate
	default:
		return errors.Wrapf(err, format, args...)
	}
}

var _ dal.Store = (*Store)(nil)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere, lower-cased.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
