package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	FieldSession  = "session_id"
	FieldJob      = "job_title"
	FieldCategory = "category"
	FieldQuestion = "question"
	FieldScore    = "score"

	// FieldProvider and FieldModel describe the answer generator backend.
	FieldProvider = "answer_provider"
	FieldModel    = "answer_model"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		value := strings.TrimSpace(field.Value)
		if key == "" || value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// SessionFields describes an interview session.
func SessionFields(id, jobTitle, category string) []zap.Field {
	return StringFields(
		StringField{Key: FieldSession, Value: id},
		StringField{Key: FieldJob, Value: jobTitle},
		StringField{Key: FieldCategory, Value: category},
	)
}

func WithSession(logger *zap.Logger, id, jobTitle, category string) *zap.Logger {
	return WithFields(logger, SessionFields(id, jobTitle, category)...)
}

func ProviderFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}
