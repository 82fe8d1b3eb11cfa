package growatt

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

//nolint:paralleltest
func TestSession_InspectBody(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantLevels []logrus.Level
	}{
		{
			name: "clean envelope logs nothing",
			body: `{"data":{},"error_code":0,"error_msg":null}`,
		},
		{
			name: "top-level array logs nothing",
			body: `[{"deviceSn":"ABC123"}]`,
		},
		{
			name:       "invalid json logs an error",
			body:       `{"data":`,
			wantLevels: []logrus.Level{logrus.ErrorLevel},
		},
		{
			name:       "login page logs an error",
			body:       `<html data-name="login"></html>`,
			wantLevels: []logrus.Level{logrus.ErrorLevel},
		},
		{
			name:       "vendor error code logs a warning",
			body:       `{"error_code":10011,"error_msg":"no auth"}`,
			wantLevels: []logrus.Level{logrus.WarnLevel},
		},
	}

	hook := logtest.NewGlobal()

	defer hook.Reset()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()

			s := &Session{}
			s.inspectBody("/v1/plant/list", []byte(tt.body))

			var levels []logrus.Level
			for _, entry := range hook.AllEntries() {
				levels = append(levels, entry.Level)
			}

			assert.Equal(t, tt.wantLevels, levels)
		})
	}
}
