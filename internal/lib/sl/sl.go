// Package sl содержит мелкие помощники для структурированного логирования
// через slog.
package sl

import "log/slog"

// Err оборачивает ошибку в slog.Attr с ключом "error", чтобы во всех
// обработчиках и сервисах ошибки логировались одинаково:
//
//	log.Error("failed to create exercise", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
