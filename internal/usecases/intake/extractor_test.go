package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	extractor := NewExtractor()

	t.Run("employee count from plain statement", func(t *testing.T) {
		update := extractor.Extract("We have 50 employees and things are getting busy")

		require.NotNil(t, update.EmployeeCount)
		assert.Equal(t, 50, *update.EmployeeCount)
	})

	t.Run("revenue with million suffix", func(t *testing.T) {
		update := extractor.Extract("We do about $2 million in annual revenue")

		require.NotNil(t, update.AnnualRevenue)
		assert.Equal(t, float64(2_000_000), *update.AnnualRevenue)
	})

	t.Run("revenue with k suffix and a year phrasing", func(t *testing.T) {
		update := extractor.Extract("The business brings in $500k a year")

		require.NotNil(t, update.AnnualRevenue)
		assert.Equal(t, float64(500_000), *update.AnnualRevenue)
	})

	t.Run("revenue stated after the keyword", func(t *testing.T) {
		update := extractor.Extract("Our revenue is around $750,000 right now")

		require.NotNil(t, update.AnnualRevenue)
		assert.Equal(t, float64(750_000), *update.AnnualRevenue)
	})

	t.Run("industry from synonyms", func(t *testing.T) {
		industries := map[string]string{
			"We are a small law firm in Ohio":         "legal",
			"I run a bookkeeping and accounting shop": "accounting",
			"We're a management consulting firm":      "consulting",
			"We are an MSP handling IT support":       "msp",
			"Our attorneys spend hours on paperwork":  "legal",
		}

		for text, want := range industries {
			update := extractor.Extract(text)
			require.NotNil(t, update.Industry, "text: %s", text)
			assert.Equal(t, want, *update.Industry, "text: %s", text)
		}
	})

	t.Run("company name after introduction phrase", func(t *testing.T) {
		update := extractor.Extract("Our company is called Meridian Legal, we handle estates")

		require.NotNil(t, update.CompanyName)
		assert.Equal(t, "Meridian Legal", *update.CompanyName)
	})

	t.Run("technologies collected without duplicates per label", func(t *testing.T) {
		update := extractor.Extract("Everything lives in Excel and QuickBooks, plus Outlook for email")

		assert.Contains(t, update.Technologies, "excel")
		assert.Contains(t, update.Technologies, "quickbooks")
		assert.Contains(t, update.Technologies, "outlook")
	})

	t.Run("challenge sentence captured", func(t *testing.T) {
		update := extractor.Extract("We struggle to keep up with invoicing every month. The team is fine otherwise.")

		require.Len(t, update.Challenges, 1)
		assert.Contains(t, update.Challenges[0], "struggle")
	})

	t.Run("no match returns empty update", func(t *testing.T) {
		update := extractor.Extract("The weather has been nice lately")

		assert.True(t, update.Empty())
	})

	t.Run("malformed input treated as empty", func(t *testing.T) {
		update := extractor.Extract("\x00\x01\x02")

		assert.True(t, update.Empty())
	})

	t.Run("combined statement fills several fields", func(t *testing.T) {
		update := extractor.Extract("We have 50 employees and lose leads because we track everything in Excel manually")

		require.NotNil(t, update.EmployeeCount)
		assert.Equal(t, 50, *update.EmployeeCount)
		assert.Contains(t, update.Technologies, "excel")
	})
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text passes through",
			in:   "We have 12 employees",
			want: "We have 12 employees",
		},
		{
			name: "control characters stripped",
			in:   "hello\x00\x07world",
			want: "helloworld",
		},
		{
			name: "invalid utf8 removed",
			in:   "caf\xffe",
			want: "cafe",
		},
		{
			name: "newlines and tabs preserved",
			in:   "line one\n\tline two",
			want: "line one\n\tline two",
		},
		{
			name: "only garbage yields empty",
			in:   "\x00\x01",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeInput(tt.in))
		})
	}
}
