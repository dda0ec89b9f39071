package logger

import (
	"fmt"
	"github.com/mitchellh/go-homedir"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	mu      sync.Mutex
	once    sync.Once
	logger  *log.Logger
	_logger *log.Logger
	level   = INFO
)

// prefix
const (
	DEBUG = "DEBUG"
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
	FATAL = "FATAL"
)

var levels = map[string]int{DEBUG: 0, INFO: 1, WARN: 2, ERROR: 3, FATAL: 4}

func setup() {
	_logger = log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile|log.LUTC)
	dir, err := homedir.Dir()
	if err != nil {
		_logger.Println("[WARN] cannot resolve home dir, file log disabled:", err)
		return
	}
	var path = filepath.Join(dir, ".lnodelist", "debug")
	if err = os.MkdirAll(path, os.ModePerm); err != nil {
		_logger.Println("[WARN] cannot create log dir, file log disabled:", err)
		return
	}
	var file = filepath.Join(path, "lnodelistLog.txt")

	logFile, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0766)
	if err != nil {
		_logger.Println("[WARN] cannot open log file, file log disabled:", err)
		return
	}
	logger = log.New(logFile, "", log.LstdFlags|log.Lshortfile|log.LUTC)
}

// SetLevel drops every message below lv. Unknown levels are ignored.
func SetLevel(lv string) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := levels[lv]; ok {
		level = lv
	}
}

// SetOutput replaces both sinks with w.
func SetOutput(w io.Writer) {
	once.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	logger = nil
	_logger = log.New(w, "", log.LstdFlags|log.Lshortfile|log.LUTC)
}

func Debug(v ...any) {
	_log(DEBUG, v)
}
func Error(v ...any) {
	_log(ERROR, v)
}
func Info(v ...any) {
	_log(INFO, v)
}
func Warn(v ...any) {
	_log(WARN, v)
}
func Fatal(v ...any) {
	_log(FATAL, v)
}
func _log(prefix string, v []any) {
	mu.Lock()
	skip := levels[prefix] < levels[level]
	mu.Unlock()
	if skip {
		return
	}
	once.Do(setup)
	mu.Lock()
	defer mu.Unlock()
	setPrefix(prefix)
	if logger != nil {
		logger.Println(v...)
	}
	_logger.Println(v...)
}
func setPrefix(logType string) {
	_, file, line, ok := runtime.Caller(3)
	var logPrefix string
	if ok {
		logPrefix = fmt.Sprintf("[%s][%s:%d]", logType, filepath.Base(file), line)
	} else {
		logPrefix = fmt.Sprintf("[%s]", logType)
	}
	if logger != nil {
		logger.SetPrefix(logPrefix)
	}
	_logger.SetPrefix(logPrefix)
}
