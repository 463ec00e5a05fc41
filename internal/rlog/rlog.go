// Copyright 2026 The lcqueue Authors
// This file is part of the lcqueue library.
//
// This software is provided "as is", without warranty of any kind,
// express or implied, including but not limited to the warranties
// of merchantability, fitness for a particular purpose and
// noninfringement. In no event shall the authors or copyright
// holders be liable for any claim, damages, or other liability,
// whether in an action of contract, tort or otherwise, arising
// from, out of or in connection with the software or the use or
// other dealings in the software.

// Package rlog is a small structured, leveled logger in the classic
// go-ethereum `log` package style: a Logger carries a fixed context of
// key/value pairs, Handlers format and write Records, and the caller frame is
// captured with go-stack/stack rather than runtime.Caller directly, which is
// what the rest of this repository's pack favors for this concern.
package rlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/go-stack/stack"
	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Lvl is a log level, ordered from most to least severe.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
)

func (l Lvl) String() string {
	switch l {
	case LvlCrit:
		return "CRIT"
	case LvlError:
		return "ERROR"
	case LvlWarn:
		return "WARN"
	case LvlInfo:
		return "INFO"
	case LvlDebug:
		return "DEBUG"
	default:
		return "????"
	}
}

// Record is a single log event.
type Record struct {
	Time time.Time
	Lvl  Lvl
	Msg  string
	Ctx  []interface{}
	Call stack.Call
}

// Handler formats and writes a Record.
type Handler interface {
	Log(r *Record) error
}

// Logger emits Records at or below its configured level through its Handler,
// carrying a fixed context prepended to every call's own key/value pairs.
type Logger interface {
	New(ctx ...interface{}) Logger
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

type logger struct {
	ctx     []interface{}
	handler Handler
	level   Lvl
}

// New creates a Logger with a fixed context, writing through handler at most
// up to level.
func New(handler Handler, level Lvl, ctx ...interface{}) Logger {
	return &logger{ctx: ctx, handler: handler, level: level}
}

func (l *logger) New(ctx ...interface{}) Logger {
	merged := make([]interface{}, 0, len(l.ctx)+len(ctx))
	merged = append(merged, l.ctx...)
	merged = append(merged, ctx...)
	return &logger{ctx: merged, handler: l.handler, level: l.level}
}

func (l *logger) write(lvl Lvl, msg string, ctx []interface{}) {
	if lvl > l.level {
		return
	}
	merged := make([]interface{}, 0, len(l.ctx)+len(ctx))
	merged = append(merged, l.ctx...)
	merged = append(merged, ctx...)
	r := &Record{
		Time: time.Now(),
		Lvl:  lvl,
		Msg:  msg,
		Ctx:  merged,
		Call: stack.Caller(2),
	}
	_ = l.handler.Log(r)
}

func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(LvlDebug, msg, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(LvlInfo, msg, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(LvlWarn, msg, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(LvlError, msg, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{})  { l.write(LvlCrit, msg, ctx) }

// TerminalHandler writes human-readable, optionally colorized lines to w.
type TerminalHandler struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

// NewTerminalHandler wraps w, colorizing level names when w looks like a TTY.
func NewTerminalHandler(w io.Writer) *TerminalHandler {
	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isatty.IsTerminal(f.Fd())
	}
	return &TerminalHandler{w: w, color: useColor}
}

var lvlColor = map[Lvl]color.Attribute{
	LvlCrit:  color.FgMagenta,
	LvlError: color.FgRed,
	LvlWarn:  color.FgYellow,
	LvlInfo:  color.FgGreen,
	LvlDebug: color.FgCyan,
}

func (h *TerminalHandler) Log(r *Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	lvl := r.Lvl.String()
	if h.color {
		lvl = color.New(lvlColor[r.Lvl]).Sprint(lvl)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s[%s] %-4s %s", r.Time.Format("2006-01-02T15:04:05-0700"), shortCall(r.Call), lvl, r.Msg)
	for i := 0; i+1 < len(r.Ctx); i += 2 {
		fmt.Fprintf(&b, " %v=%v", r.Ctx[i], r.Ctx[i+1])
	}
	b.WriteByte('\n')

	_, err := io.WriteString(h.w, b.String())
	return err
}

func shortCall(c stack.Call) string {
	s := fmt.Sprintf("%+v", c)
	if idx := strings.LastIndexByte(s, '/'); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// NewFileHandler rotates through path using lumberjack, formatting the same
// way as TerminalHandler but without color.
func NewFileHandler(path string, maxSizeMB int) Handler {
	return &TerminalHandler{w: &lumberjack.Logger{Filename: path, MaxSize: maxSizeMB, MaxBackups: 5, Compress: true}}
}

var (
	rootMu sync.RWMutex
	root   Logger = New(NewTerminalHandler(os.Stderr), LvlInfo)
)

// SetRoot replaces the package-level root logger, used by cmd/lcrelayd to wire
// configured handlers (file rotation, level) at startup.
func SetRoot(l Logger) {
	rootMu.Lock()
	defer rootMu.Unlock()
	root = l
}

func current() Logger {
	rootMu.RLock()
	defer rootMu.RUnlock()
	return root
}

func Debug(msg string, ctx ...interface{}) { current().Debug(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { current().Info(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { current().Warn(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { current().Error(msg, ctx...) }
func Crit(msg string, ctx ...interface{})  { current().Crit(msg, ctx...) }
