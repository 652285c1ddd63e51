package telegram

import (
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
)

// telegoLogger routes telego's own logs through the application logger with the token masked
type telegoLogger struct {
	logger  coreport.Logger
	replace *strings.Replacer
}

func newTelegoLogger(logger coreport.Logger, token string) *telegoLogger {
	pairs := []string{}
	if token != "" {
		pairs = append(pairs, token, "BOT_TOKEN")
	}
	return &telegoLogger{
		logger:  logger,
		replace: strings.NewReplacer(pairs...),
	}
}

func (l *telegoLogger) Debugf(format string, args ...any) {
	l.logger.Debug(l.replace.Replace(fmt.Sprintf(format, args...)), map[string]any{"source": "telego"})
}

func (l *telegoLogger) Errorf(format string, args ...any) {
	l.logger.Error(l.replace.Replace(fmt.Sprintf(format, args...)), map[string]any{"source": "telego"})
}
