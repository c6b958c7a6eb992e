/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Custom log formatter for the Akaylee Learner. Provides compact,
structured output with colors and deterministically ordered fields.
*/

package logging

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// CustomFormatter renders log entries as a single colored line with sorted
// key=value fields
type CustomFormatter struct {
	Timestamp bool
	Colors    bool
}

// Format formats a log entry
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var out strings.Builder

	if f.Timestamp {
		ts := entry.Time.Format("2006-01-02 15:04:05.000")
		if f.Colors {
			fmt.Fprintf(&out, "\033[36m%s\033[0m ", ts)
		} else {
			fmt.Fprintf(&out, "%s ", ts)
		}
	}

	level := strings.ToUpper(entry.Level.String())
	if f.Colors {
		fmt.Fprintf(&out, "\033[%dm%s\033[0m ", f.levelColor(entry.Level), level)
	} else {
		fmt.Fprintf(&out, "%s ", level)
	}

	out.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if f.Colors {
				fmt.Fprintf(&out, " \033[34m%s\033[0m=\033[32m%v\033[0m", k, entry.Data[k])
			} else {
				fmt.Fprintf(&out, " %s=%v", k, entry.Data[k])
			}
		}
	}

	out.WriteString("\n")
	return []byte(out.String()), nil
}

// levelColor returns the ANSI color code for a log level
func (f *CustomFormatter) levelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel:
		return 37 // White
	case logrus.InfoLevel:
		return 32 // Green
	case logrus.WarnLevel:
		return 33 // Yellow
	case logrus.ErrorLevel:
		return 31 // Red
	case logrus.FatalLevel, logrus.PanicLevel:
		return 35 // Magenta
	default:
		return 37
	}
}
