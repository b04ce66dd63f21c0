// utils/slug.go
package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a title into a URL-safe slug.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// GenerateUniqueSlug derives a slug from the title and resolves
// collisions with a numeric suffix: slug, slug-1, slug-2, ...
// excludeID skips the record being updated; pass uuid.Nil on create.
func GenerateUniqueSlug(db *gorm.DB, title string, excludeID uuid.UUID) (string, error) {
	baseSlug := Slugify(title)
	if baseSlug == "" {
		baseSlug = "service"
	}

	candidate := baseSlug
	for suffix := 1; ; suffix++ {
		query := db.Table("services").Where("slug = ?", candidate)
		if excludeID != uuid.Nil {
			query = query.Where("id <> ?", excludeID)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", baseSlug, suffix)
	}
}
