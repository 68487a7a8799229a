package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limitbook/domain"
)

func TestParseScenarioLine(t *testing.T) {
	intent, err := parseScenarioLine("buy 1 100 10")
	require.NoError(t, err)
	assert.Equal(t, domain.Buy, intent.Side)
	assert.Equal(t, uint64(1), intent.ClientID)
	assert.Equal(t, int64(100), intent.LimitPrice)
	assert.Equal(t, int64(10), intent.Shares)

	intent, err = parseScenarioLine("SELL 2 101 5")
	require.NoError(t, err)
	assert.Equal(t, domain.Sell, intent.Side)
}

func TestParseScenarioLineRejectsGarbage(t *testing.T) {
	_, err := parseScenarioLine("HOLD 1 100 10")
	assert.Error(t, err)

	_, err = parseScenarioLine("BUY 1 100")
	assert.Error(t, err)
}

func TestRunReplayAgainstScenarioFiles(t *testing.T) {
	require.NoError(t, runReplay("TEST", "testdata/s1_rest_then_match.txt"))
	require.NoError(t, runReplay("TEST", "testdata/s3_price_improvement.txt"))
}
