package postgres

import (
	"time"

	"go.uber.org/zap"
)

// eventLogger is a dbr.EventReceiver that forwards query events to zap.
// Successful events and timings go to debug, errors to error.
type eventLogger struct {
	logger *zap.Logger
}

func kvFields(kvs map[string]string) []zap.Field {
	fields := make([]zap.Field, 0, len(kvs))
	for k, v := range kvs {
		fields = append(fields, zap.String(k, v))
	}
	return fields
}

func (e *eventLogger) Event(eventName string) {
	e.logger.Debug(eventName)
}

func (e *eventLogger) EventKv(eventName string, kvs map[string]string) {
	e.logger.Debug(eventName, kvFields(kvs)...)
}

func (e *eventLogger) EventErr(eventName string, err error) error {
	e.logger.Error(eventName, zap.Error(err))
	return err
}

func (e *eventLogger) EventErrKv(eventName string, err error, kvs map[string]string) error {
	e.logger.Error(eventName, append(kvFields(kvs), zap.Error(err))...)
	return err
}

func (e *eventLogger) Timing(eventName string, nanoseconds int64) {
	e.logger.Debug(eventName, zap.Duration("took", time.Duration(nanoseconds)))
}

func (e *eventLogger) TimingKv(eventName string, nanoseconds int64, kvs map[string]string) {
	e.logger.Debug(eventName, append(kvFields(kvs), zap.Duration("took", time.Duration(nanoseconds)))...)
}
