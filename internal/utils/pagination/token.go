package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodePostCursor creates an opaque next-page token from the last post of a page.
func EncodePostCursor(cursor domain.PostCursor) string {
	tokenStr := fmt.Sprintf("%s|%s", cursor.CreatedAt.UTC().Format(timeFormat), cursor.PostID)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodePostCursor parses a token produced by EncodePostCursor.
func DecodePostCursor(token string) (domain.PostCursor, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return domain.PostCursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return domain.PostCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return domain.PostCursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return domain.PostCursor{CreatedAt: createdAt, PostID: parts[1]}, nil
}

// ClampLimit applies the default and the upper bound to a requested page size.
func ClampLimit(limit, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
