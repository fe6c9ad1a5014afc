package sqlite

import (
	"strings"

	repo "voice-task-management/internal/task/repository"
)

func buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if opt.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(opt.Status))
	}
	if opt.Priority != "" {
		conds = append(conds, "priority = ?")
		args = append(args, string(opt.Priority))
	}

	var b strings.Builder
	if len(conds) > 0 {
		b.WriteString("WHERE " + strings.Join(conds, " AND ") + " ")
	}
	b.WriteString("ORDER BY created_at ASC, rowid ASC")

	if opt.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, opt.Limit)
		if opt.Offset > 0 {
			b.WriteString(" OFFSET ?")
			args = append(args, opt.Offset)
		}
	}
	return b.String(), args
}
