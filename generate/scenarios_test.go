package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcplibrary/polaris-sampledata/generate"
)

func Test_DefaultScenarios_Mix(t *testing.T) {
	scenarios := generate.DefaultScenarios()

	require.Len(t, scenarios, 25)

	holds, overdues, almosts, inactive := 0, 0, 0, 0
	for _, s := range scenarios {
		holds += s.Holds
		overdues += s.Overdues
		almosts += s.AlmostOverdues
		if s.Holds == 0 && s.Overdues == 0 && s.AlmostOverdues == 0 {
			inactive++
		}
	}

	assert.Equal(t, 18, holds)
	assert.Equal(t, 27, overdues)
	assert.Equal(t, 7, almosts)
	assert.Equal(t, 5, inactive)

	// The item pool must cover the full mix; exhaustion is tolerated at
	// runtime but the default configuration is not meant to trigger it.
	assert.LessOrEqual(t, holds+overdues+almosts, generate.ItemPoolSize)
}

func Test_DefaultScenarios_EveryScenarioHasADescription(t *testing.T) {
	for _, s := range generate.DefaultScenarios() {
		assert.NotEmpty(t, s.Description)
	}
}
