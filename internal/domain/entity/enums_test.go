package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssetType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    AssetType
		wantErr bool
	}{
		{name: "mini index", input: "WIN$", want: AssetWIN},
		{name: "mini dollar", input: "WDO$", want: AssetWDO},
		{name: "unknown code", input: "PETR4", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong case", input: "win$", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAssetType(tt.input)
			if tt.wantErr {
				var unknown *UnknownEnumError
				require.ErrorAs(t, err, &unknown)
				assert.Equal(t, tt.input, unknown.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeFrame(t *testing.T) {
	t.Parallel()

	for _, tf := range TimeFrames() {
		got, err := ParseTimeFrame(string(tf))
		require.NoError(t, err)
		assert.Equal(t, tf, got)
	}

	_, err := ParseTimeFrame("m2")
	assert.Error(t, err)
	_, err = ParseTimeFrame("h1") // canonical form is upper case
	assert.Error(t, err)
}

func TestTimeFrameCompare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, TimeFrameM1.Compare(TimeFrameW1))
	assert.Equal(t, 1, TimeFrameD1.Compare(TimeFrameM30))
	assert.Equal(t, 0, TimeFrameH4.Compare(TimeFrameH4))

	// Unknown values sort before every valid member.
	assert.Equal(t, -1, TimeFrame("bogus").Compare(TimeFrameM1))

	frames := TimeFrames()
	for i := 1; i < len(frames); i++ {
		assert.Equal(t, -1, frames[i-1].Compare(frames[i]),
			"%s should sort before %s", frames[i-1], frames[i])
	}
}

func TestParseOrderStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"pending", "filled", "canceled", "rejected", "partially_filled"} {
		got, err := ParseOrderStatus(s)
		require.NoError(t, err)
		assert.True(t, got.Valid())
	}

	_, err := ParseOrderStatus("expired")
	var unknown *UnknownEnumError
	require.ErrorAs(t, err, &unknown)
	assert.Contains(t, unknown.Error(), "expired")
}

func TestParseDirectionAndAction(t *testing.T) {
	t.Parallel()

	d, err := ParseDirectionType("wait")
	require.NoError(t, err)
	assert.Equal(t, DirectionWait, d)
	_, err = ParseDirectionType("flat")
	assert.Error(t, err)

	a, err := ParseActionType("close")
	require.NoError(t, err)
	assert.Equal(t, ActionClose, a)
	_, err = ParseActionType("sell")
	assert.Error(t, err)

	o, err := ParseOrderType("limit")
	require.NoError(t, err)
	assert.Equal(t, OrderLimit, o)
	_, err = ParseOrderType("iceberg")
	assert.Error(t, err)
}
