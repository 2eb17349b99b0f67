package conf

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1.5s"`, want: 1500 * time.Millisecond},
		{name: "nanoseconds", input: `2000`, want: 2 * time.Microsecond},
		{name: "empty string", input: `""`, want: 0},
		{name: "null", input: `null`, want: 0},
		{name: "garbage", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, d.AsDuration())
		})
	}
}

func TestBootstrap_NilGetters(t *testing.T) {
	var bc *Bootstrap
	require.Nil(t, bc.GetServer())
	require.Nil(t, bc.GetDependency())
	require.Nil(t, bc.GetServer().GetGrpc())
	require.Nil(t, bc.GetServer().GetHttp())
}
