package services

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// slugBase normalizes a display name to a lowercase hyphen-delimited token.
// Characters outside [a-z0-9-] are dropped, runs of separators collapse to a
// single hyphen.
func slugBase(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// assignSlug produces a unique slug for name within table. Rows whose slug
// matches ^base(-\d+)?$ (case-insensitive) are counted; when any exist the
// numeric suffix starts at count+1 and climbs until a free slug is found.
// currentID is excluded so renaming an entity back to its own slug is a no-op.
func assignSlug(gdb *gorm.DB, table, name string, currentID uint) (string, error) {
	base := slugBase(name)
	if base == "" {
		return "", errf(KindInvalid, "invalid name %q", name)
	}

	var candidates []string
	if err := gdb.Table(table).
		Where("lower(slug) = ? OR lower(slug) LIKE ?", base, base+"-%").
		Pluck("slug", &candidates).Error; err != nil {
		return "", err
	}
	re := regexp.MustCompile("^" + regexp.QuoteMeta(base) + `(-\d+)?$`)
	count := 0
	for _, s := range candidates {
		if re.MatchString(strings.ToLower(s)) {
			count++
		}
	}
	if count > 0 {
		count++
	}

	slug := base
	for {
		taken, err := slugTaken(gdb, table, slug, currentID)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, count)
		count++
	}
}

func slugTaken(gdb *gorm.DB, table, slug string, currentID uint) (bool, error) {
	var n int64
	err := gdb.Table(table).
		Where("slug = ? AND id <> ?", slug, currentID).
		Count(&n).Error
	return n > 0, err
}
