package slugify

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"
)

// ExistsFunc reports whether a slug is already taken. Repositories pass
// their own uniqueness query.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// Make derives a URL-safe slug from the title.
func Make(title string) string {
	return slug.Make(title)
}

// MakeUnique derives a slug from the title and, on collision, appends
// an incrementing numeric suffix ("-1", "-2", ...) until the slug is
// free.
func MakeUnique(ctx context.Context, title string, exists ExistsFunc) (string, error) {
	base := slug.Make(title)
	candidate := base
	counter := 1

	for {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("error checking slug uniqueness: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}
