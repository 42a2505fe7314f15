package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/business-doctor-api/internal/domain"
)

const defaultHourlyRate = 75

func TestIdentifier_Identify(t *testing.T) {
	identifier := NewIdentifier()

	t.Run("manual excel tracking with lost leads", func(t *testing.T) {
		text := "We have 50 employees and lose leads because we track everything in Excel manually"

		found := identifier.Identify(text, defaultHourlyRate)

		names := make([]string, 0, len(found))
		for _, b := range found {
			names = append(names, b.Name)
			assert.NotEqual(t, domain.PriorityLow, b.Priority, "bottleneck %s", b.Name)
		}

		assert.Contains(t, names, "Manual process overhead")
		assert.Contains(t, names, "Spreadsheet-based tracking")
		assert.Contains(t, names, "Revenue leakage")
	})

	t.Run("cost impact scales with hourly rate", func(t *testing.T) {
		found := identifier.Identify("Everything is manual here", 300)

		require.Len(t, found, 1)
		assert.Equal(t, "Manual process overhead", found[0].Name)
		assert.Equal(t, float64(8*300), found[0].CostImpact)
		assert.Equal(t, domain.PriorityCritical, found[0].Priority)
	})

	t.Run("at most one bottleneck per pattern", func(t *testing.T) {
		found := identifier.Identify("It is slow, really slow, painfully slow", defaultHourlyRate)

		require.Len(t, found, 1)
		assert.Equal(t, "Slow turnaround", found[0].Name)
	})

	t.Run("duplicate entry phrasing variants", func(t *testing.T) {
		for _, text := range []string{
			"we re-enter the same data twice",
			"lots of copy pasting between systems",
			"staff retype invoices into QuickBooks",
		} {
			found := identifier.Identify(text, defaultHourlyRate)

			names := make([]string, 0, len(found))
			for _, b := range found {
				names = append(names, b.Name)
			}
			assert.Contains(t, names, "Duplicate data entry", "text: %s", text)
		}
	})

	t.Run("clean text yields nothing", func(t *testing.T) {
		found := identifier.Identify("Business is great and the team is happy", defaultHourlyRate)

		assert.Empty(t, found)
	})

	t.Run("malformed input yields nothing", func(t *testing.T) {
		found := identifier.Identify("\x00\x01", defaultHourlyRate)

		assert.Nil(t, found)
	})

	t.Run("annualized impact follows weekly figures", func(t *testing.T) {
		found := identifier.Identify("we chase clients for signatures constantly", defaultHourlyRate)

		require.Len(t, found, 1)
		b := found[0]
		assert.Equal(t, b.TimeImpactHours*52, b.AnnualHoursImpact())
		assert.Equal(t, b.CostImpact*52, b.AnnualCostImpact())
	})
}
