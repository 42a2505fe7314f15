package domain

// CompanyMetrics holds the company facts collected during intake. All fields are
// optional until observed in the transcript; later statements overwrite earlier
// ones but never clear a field back to empty.
type CompanyMetrics struct {
	CompanyName   string   `json:"company_name,omitempty"`
	Industry      string   `json:"industry,omitempty"`
	EmployeeCount int      `json:"employee_count,omitempty"`
	AnnualRevenue float64  `json:"annual_revenue,omitempty"`
	Technologies  []string `json:"technologies,omitempty"`
	Challenges    []string `json:"challenges,omitempty"`
}

// MetricsUpdate is a partial CompanyMetrics produced by the extractor: only the
// fields detected in the analyzed text are set.
type MetricsUpdate struct {
	CompanyName   *string
	Industry      *string
	EmployeeCount *int
	AnnualRevenue *float64
	Technologies  []string
	Challenges    []string
}

// Empty reports whether the update carries no new information.
func (u MetricsUpdate) Empty() bool {
	return u.CompanyName == nil &&
		u.Industry == nil &&
		u.EmployeeCount == nil &&
		u.AnnualRevenue == nil &&
		len(u.Technologies) == 0 &&
		len(u.Challenges) == 0
}

// FieldCount returns how many distinct facts the update carries.
func (u MetricsUpdate) FieldCount() int {
	count := 0
	if u.CompanyName != nil {
		count++
	}
	if u.Industry != nil {
		count++
	}
	if u.EmployeeCount != nil {
		count++
	}
	if u.AnnualRevenue != nil {
		count++
	}
	count += len(u.Technologies)
	count += len(u.Challenges)
	return count
}

// Apply merges the update into the metrics, last statement wins. Technologies
// and challenges are appended without duplicates.
func (m *CompanyMetrics) Apply(u MetricsUpdate) {
	if u.CompanyName != nil {
		m.CompanyName = *u.CompanyName
	}
	if u.Industry != nil {
		m.Industry = *u.Industry
	}
	if u.EmployeeCount != nil {
		m.EmployeeCount = *u.EmployeeCount
	}
	if u.AnnualRevenue != nil {
		m.AnnualRevenue = *u.AnnualRevenue
	}
	for _, tech := range u.Technologies {
		if !containsString(m.Technologies, tech) {
			m.Technologies = append(m.Technologies, tech)
		}
	}
	for _, challenge := range u.Challenges {
		if !containsString(m.Challenges, challenge) {
			m.Challenges = append(m.Challenges, challenge)
		}
	}
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
