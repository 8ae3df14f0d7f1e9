package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	var v struct {
		D Duration `json:"d"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"d":"1m30s"}`), &v))
	require.Equal(t, 90*time.Second, v.D.Duration)

	require.NoError(t, json.Unmarshal([]byte(`{"d":5000000000}`), &v))
	require.Equal(t, 5*time.Second, v.D.Duration)

	require.Error(t, json.Unmarshal([]byte(`{"d":"not-a-duration"}`), &v))
	require.Error(t, json.Unmarshal([]byte(`{"d":true}`), &v))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{3 * time.Second})
	require.NoError(t, err)
	require.JSONEq(t, `"3s"`, string(b))
}
