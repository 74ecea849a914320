package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

var (
	lock       sync.RWMutex
	stdLogger  log.Logger
	fileLogger log.Logger
	logFile    *os.File
	filter     = level.AllowInfo()
)

func init() {
	stdLogger = newLogger(os.Stderr)
}

// caller is bound per call in write, since the sinks sit behind a
// different number of frames for every entry point.
func newLogger(w io.Writer) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	return log.With(l, "ts", log.DefaultTimestampUTC)
}

type logger struct {
	keyvals []interface{}
}

// Logger returns a go-kit logger writing to every enabled sink at the
// current level. Components that take a log.Logger are handed this.
func Logger() log.Logger {
	return &logger{}
}

// With returns a Logger that prefixes every line with keyvals.
func With(keyvals ...interface{}) log.Logger {
	return &logger{keyvals: keyvals}
}

func (l *logger) Log(keyvals ...interface{}) error {
	return write(l.keyvals, keyvals)
}

// write must be called directly from an exported entry point, which in
// turn is called by the code being logged. The valuer, write and the
// entry point make up the three frames skipped.
func write(prefix []interface{}, keyvals []interface{}) error {
	kvs := make([]interface{}, 0, 2+len(prefix)+len(keyvals))
	kvs = append(kvs, "caller", log.Caller(3)())
	kvs = append(kvs, prefix...)
	kvs = append(kvs, keyvals...)

	lock.RLock()
	defer lock.RUnlock()

	for _, l := range []log.Logger{stdLogger, fileLogger} {
		if l == nil {
			continue
		}
		if err := level.NewFilter(l, filter).Log(kvs...); err != nil {
			return err
		}
	}
	return nil
}

// default std logger is enabled
func EnableStdLogger(enable bool) {
	lock.Lock()
	defer lock.Unlock()

	if !enable {
		stdLogger = nil
		return
	}
	if stdLogger == nil {
		stdLogger = newLogger(os.Stderr)
	}
}

// default file logger is disabled
func EnableFileLogger(enable bool, savePath string) error {
	lock.Lock()
	defer lock.Unlock()

	fileLogger = nil
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	if !enable {
		return nil
	}

	f, err := openLogFile(savePath)
	if err != nil {
		return err
	}
	logFile = f
	fileLogger = newLogger(f)
	return nil
}

func EnableOnlyFileLogger(enable bool, savePath string) error {
	if err := EnableFileLogger(enable, savePath); err != nil {
		return err
	}
	if enable {
		EnableStdLogger(false)
	}
	return nil
}

func Debug(keyvals ...interface{}) {
	write([]interface{}{level.Key(), level.DebugValue()}, keyvals)
}

func Info(keyvals ...interface{}) {
	write([]interface{}{level.Key(), level.InfoValue()}, keyvals)
}

func Warn(keyvals ...interface{}) {
	write([]interface{}{level.Key(), level.WarnValue()}, keyvals)
}

func Error(keyvals ...interface{}) {
	write([]interface{}{level.Key(), level.ErrorValue()}, keyvals)
}

// SetLevel sets the lowest level written: debug, info, warn or error.
func SetLevel(name string) error {
	var opt level.Option
	switch strings.ToLower(name) {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return fmt.Errorf("unknown log level: %s", name)
	}

	lock.Lock()
	defer lock.Unlock()
	filter = opt
	return nil
}

func openLogFile(savePath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(savePath), 0777); err != nil {
		return nil, err
	}
	return os.OpenFile(savePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
}
