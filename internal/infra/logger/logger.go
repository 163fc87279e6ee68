package logger

import (
	"os"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/rs/zerolog"
)

// New 建立服務層共用 logger
// debug 環境輸出 console 格式，其餘輸出 JSON
func New(moduleName, environment string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var logger zerolog.Logger
	if constants.ENV(environment) == constants.Debug {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.With().
		Timestamp().
		Str("module", moduleName).
		Logger()
}
