package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, SetupLogging("debug").Level)
	assert.Equal(t, logrus.InfoLevel, SetupLogging("nonsense").Level)
}

func TestLogData_Log(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger(buf, logrus.InfoLevel)

	logData := NewLogData(logger)
	logData.AddData("userID", "abc")
	logData.AddTiming("query")()
	logData.Log().Info("done")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["loglevel"])
	assert.Equal(t, "abc", line["userID"])
	assert.Contains(t, line, "query")
	assert.Equal(t, "done", line["msg"])
}

func TestLogData_ConcurrentWrites(t *testing.T) {
	logData := NewLogData(newLogger(&bytes.Buffer{}, logrus.InfoLevel))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logData.AddData("key", i)
			logData.AddToExistingTiming("total")()
		}(i)
	}
	wg.Wait()

	assert.NotNil(t, logData.Log())
}

func TestGetLogData(t *testing.T) {
	logData := NewLogData(logrus.New())
	ctx := WithLogData(context.Background(), logData)

	assert.Same(t, logData, GetLogData(ctx))
	assert.NotNil(t, GetLogData(context.Background()))
}

func TestLoggingWrapper(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger(buf, logrus.InfoLevel)

	ok := LoggingWrapper("Ok", logger, func(w http.ResponseWriter, r *http.Request, l *LogData) error {
		assert.Same(t, l, GetLogData(r.Context()))
		w.WriteHeader(http.StatusOK)
		return nil
	})
	rec := httptest.NewRecorder()
	ok(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "Handler.Ok.Complete")

	buf.Reset()
	failing := LoggingWrapper("Fail", logger, func(w http.ResponseWriter, r *http.Request, l *LogData) error {
		return errors.New("boom")
	})
	failing(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, buf.String(), "Handler.Fail.Error")
	assert.Contains(t, buf.String(), "boom")
}
