package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Level define a severidade mínima registrada
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converte o nome do nível; valores desconhecidos resultam em info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// SimpleLogger é uma implementação simples de Logger
type SimpleLogger struct {
	level       Level
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	warnLogger  *log.Logger
}

// NewLogger cria uma nova instância de Logger
func NewLogger(level Level) Logger {
	return NewWithWriters(level, os.Stdout, os.Stderr)
}

// NewWithWriters cria um Logger escrevendo em out e, para erros, em errOut
func NewWithWriters(level Level, out, errOut io.Writer) Logger {
	flags := log.Ldate | log.Ltime
	return &SimpleLogger{
		level:       level,
		infoLogger:  log.New(out, "INFO: ", flags),
		errorLogger: log.New(errOut, "ERROR: ", flags),
		debugLogger: log.New(out, "DEBUG: ", flags),
		warnLogger:  log.New(out, "WARN: ", flags),
	}
}

// Nop retorna um Logger que descarta tudo
func Nop() Logger {
	return NewWithWriters(LevelError+1, io.Discard, io.Discard)
}

// Info registra uma mensagem de informação
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	l.write(LevelInfo, l.infoLogger, msg, keysAndValues)
}

// Error registra uma mensagem de erro
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.write(LevelError, l.errorLogger, msg, keysAndValues)
}

// Debug registra uma mensagem de debug
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.write(LevelDebug, l.debugLogger, msg, keysAndValues)
}

// Warn registra uma mensagem de aviso
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.write(LevelWarn, l.warnLogger, msg, keysAndValues)
}

func (l *SimpleLogger) write(level Level, target *log.Logger, msg string, keysAndValues []interface{}) {
	if level < l.level {
		return
	}
	target.Print(msg + formatPairs(keysAndValues))
}

// formatPairs formata os pares como " chave=valor"; uma chave sem valor
// recebe "(MISSING)"
func formatPairs(keysAndValues []interface{}) string {
	if len(keysAndValues) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		b.WriteByte(' ')
		fmt.Fprint(&b, keysAndValues[i])
		b.WriteByte('=')
		if i+1 < len(keysAndValues) {
			value := fmt.Sprint(keysAndValues[i+1])
			if strings.ContainsAny(value, " \t\"") {
				value = fmt.Sprintf("%q", value)
			}
			b.WriteString(value)
		} else {
			b.WriteString("(MISSING)")
		}
	}
	return b.String()
}
