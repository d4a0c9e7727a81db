package postgres

import (
	"errors"
	"testing"

	"github.com/gocraft/dbr/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ dbr.EventReceiver = (*eventLogger)(nil)

func TestEventLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := &eventLogger{logger: zap.New(core)}

	want := errors.New("relation does not exist")
	if got := e.EventErrKv("dbr.select.load.query", want, map[string]string{"sql": "SELECT 1"}); !errors.Is(got, want) {
		t.Errorf("EventErrKv returned %v, want the original error", got)
	}
	e.TimingKv("dbr.select", 1500, map[string]string{"sql": "SELECT 1"})

	errs := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	if len(errs) != 1 || errs[0].ContextMap()["sql"] != "SELECT 1" {
		t.Errorf("error entries = %+v", errs)
	}
	if n := logs.FilterLevelExact(zapcore.DebugLevel).Len(); n != 1 {
		t.Errorf("debug entries = %d, want 1", n)
	}
}
