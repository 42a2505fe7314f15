package analyzing

import "github.com/vfg2006/business-doctor-api/internal/domain"

// Static industry reference table. Values are conservative mid-market figures
// for professional services; anything outside the known set falls back to the
// default row.
var benchmarks = map[string]domain.BenchmarkRow{
	"legal": {
		Industry:           "legal",
		RevenuePerEmployee: 200_000,
		BillableHoursPct:   0.65,
		AdminOverheadPct:   0.35,
		TypicalHourlyRate:  300,
	},
	"accounting": {
		Industry:           "accounting",
		RevenuePerEmployee: 150_000,
		BillableHoursPct:   0.70,
		AdminOverheadPct:   0.30,
		TypicalHourlyRate:  200,
	},
	"consulting": {
		Industry:           "consulting",
		RevenuePerEmployee: 175_000,
		BillableHoursPct:   0.75,
		AdminOverheadPct:   0.25,
		TypicalHourlyRate:  250,
	},
	"msp": {
		Industry:           "msp",
		RevenuePerEmployee: 125_000,
		BillableHoursPct:   0.60,
		AdminOverheadPct:   0.40,
		TypicalHourlyRate:  150,
	},
}

var defaultBenchmark = domain.BenchmarkRow{
	Industry:           "default",
	RevenuePerEmployee: 100_000,
	BillableHoursPct:   0.50,
	AdminOverheadPct:   0.50,
	TypicalHourlyRate:  75,
}

// BenchmarkFor returns the reference row for the industry, or the default row
// when the industry is unknown or empty.
func BenchmarkFor(industry string) domain.BenchmarkRow {
	if row, ok := benchmarks[industry]; ok {
		return row
	}
	return defaultBenchmark
}

// Benchmarks returns every known industry row plus the default, for the
// read-only benchmark endpoint.
func Benchmarks() []domain.BenchmarkRow {
	rows := make([]domain.BenchmarkRow, 0, len(benchmarks)+1)
	for _, industry := range []string{"legal", "accounting", "consulting", "msp"} {
		rows = append(rows, benchmarks[industry])
	}
	rows = append(rows, defaultBenchmark)
	return rows
}
