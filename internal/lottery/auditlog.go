package lottery

import (
	"fmt"
	"strings"
)

const (
	infoPrefix  = "INFO "
	fatalPrefix = "FATAL "
)

// auditLog collects the human readable lines of one run. Lines are never
// rewritten once appended.
type auditLog struct {
	lines []string
}

func (l *auditLog) add(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *auditLog) info(format string, args ...any) {
	l.add(infoPrefix+format, args...)
}

func (l *auditLog) fatal(format string, args ...any) {
	l.add(fatalPrefix+format, args...)
}

func (l *auditLog) snapshot() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// JoinLog renders log lines the way they are stored and shown to leaders.
func JoinLog(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// IsFatalLine reports whether a log line records an aborted run.
func IsFatalLine(line string) bool {
	return strings.HasPrefix(line, fatalPrefix)
}
