package wad

import (
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger sets the logger used for debug output. A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
