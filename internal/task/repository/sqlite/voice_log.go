package sqlite

import (
	"context"

	"voice-task-management/internal/model"
	repo "voice-task-management/internal/task/repository"
)

const defaultVoiceLogLimit = 50

// CreateVoiceLog appends one entry to the voice command history.
func (r *Repository) CreateVoiceLog(ctx context.Context, opt repo.CreateVoiceLogOptions) (model.VoiceLog, error) {
	const query = `
		INSERT INTO voice_logs (raw_command, interpreted_intent, action_triggered, parser_used, success, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	now := r.now().UTC()
	res, err := r.db.ExecContext(ctx, query,
		opt.RawCommand, opt.InterpretedIntent, opt.ActionTriggered, opt.ParserUsed, opt.Success, formatTime(now),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateVoiceLog"), err)
		return model.VoiceLog{}, repo.ErrFailedToInsert
	}
	id, _ := res.LastInsertId()

	return model.VoiceLog{
		ID:                id,
		RawCommand:        opt.RawCommand,
		InterpretedIntent: opt.InterpretedIntent,
		ActionTriggered:   opt.ActionTriggered,
		ParserUsed:        opt.ParserUsed,
		Success:           opt.Success,
		CreatedAt:         now,
	}, nil
}

// ListVoiceLogs returns the newest entries first.
func (r *Repository) ListVoiceLogs(ctx context.Context, opt repo.ListVoiceLogsOptions) ([]model.VoiceLog, error) {
	const query = `
		SELECT id, raw_command, interpreted_intent, action_triggered, parser_used, success, created_at
		FROM voice_logs ORDER BY id DESC LIMIT ?`

	limit := opt.Limit
	if limit <= 0 {
		limit = defaultVoiceLogLimit
	}

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListVoiceLogs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	logs := make([]model.VoiceLog, 0)
	for rows.Next() {
		var (
			v         model.VoiceLog
			createdAt string
		)
		if err := rows.Scan(&v.ID, &v.RawCommand, &v.InterpretedIntent, &v.ActionTriggered, &v.ParserUsed, &v.Success, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListVoiceLogs"), err)
			return nil, repo.ErrFailedToList
		}
		v.CreatedAt = parseTime(createdAt)
		logs = append(logs, v)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return logs, nil
}

var (
	_ repo.TaskRepository     = (*Repository)(nil)
	_ repo.VoiceLogRepository = (*Repository)(nil)
)
