package logger

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) TestLevels() {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}

	for level, want := range cases {
		l, err := New(level)
		s.Require().NoError(err, level)
		s.True(l.Core().Enabled(want), level)
		if want > zapcore.DebugLevel {
			s.False(l.Core().Enabled(want-1), level)
		}
	}
}
