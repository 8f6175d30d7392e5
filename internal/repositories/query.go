package repositories

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/models"
)

const bookmarkColumns = "id, owner_id, url, name, description, tags, created_at"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildListQuery renders the owner scoped listing query for f.
// Records skipped are f.Offset pages of f.PageSize.
func buildListQuery(ownerID uuid.UUID, f models.BookmarkFilter) (string, []any, error) {
	var sb strings.Builder
	args := []any{ownerID}

	sb.WriteString("SELECT " + bookmarkColumns + " FROM bookmarks WHERE owner_id = $1")

	if f.Search != "" {
		args = append(args, "%"+likeEscaper.Replace(f.Search)+"%")
		n := len(args)
		fmt.Fprintf(&sb, " AND (name ILIKE $%d OR description ILIKE $%d)", n, n)
	}

	if len(f.Tags) > 0 {
		tags, err := models.Tags(f.Tags).Value()
		if err != nil {
			return "", nil, err
		}
		args = append(args, tags)
		fmt.Fprintf(&sb, " AND tags @> $%d::jsonb", len(args))
	}

	switch f.SortBy {
	case models.SortByName:
		sb.WriteString(" ORDER BY name ASC, id ASC")
	default:
		sb.WriteString(" ORDER BY created_at DESC, id ASC")
	}

	args = append(args, f.PageSize, f.Skip())
	fmt.Fprintf(&sb, " LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return sb.String(), args, nil
}
