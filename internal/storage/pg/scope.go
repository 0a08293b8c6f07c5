package pg

import (
	"fmt"

	"github.com/feedboard-dev/feedboard/internal/access"
)

// boardScopeSQL renders the visibility scope as a SQL predicate over
// the boards table aliased as alias, appending bind values to args.
// Placeholders continue from len(args)+1. Must stay equivalent to
// access.BoardScope.Covers.
func boardScopeSQL(scope access.BoardScope, alias string, args []any) (string, []any) {
	switch {
	case scope.All:
		return "TRUE", args
	case scope.PublicOnly:
		return alias + ".is_public", args
	default:
		args = append(args, scope.UserId)
		p := len(args)
		cond := fmt.Sprintf(
			"(%[1]s.is_public OR %[1]s.created_by = $%[2]d OR EXISTS (SELECT 1 FROM board_members bm WHERE bm.board_id = %[1]s.id AND bm.user_id = $%[2]d))",
			alias, p)
		return cond, args
	}
}
