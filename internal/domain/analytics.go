package domain

// AnalyticsRecord is the one-to-one financial analysis attached to a
// project. It stays editable while Enabled is false; once enabled it is
// immutable through the service interface. Bookmarks and MonthlyIncomeCents
// are copied from the project row at creation time and never re-synced.
type AnalyticsRecord struct {
	ID        int32 `json:"id"`
	ProjectID int32 `json:"project_id"`

	FeasibilityScore   int32 `json:"feasibility_score"`
	ProfitMarginBps    int32 `json:"profit_margin_bps"`
	PaybackMonths      int32 `json:"payback_months"`
	RequiredFunding    int32 `json:"required_funding_cents"`
	MonthlyIncomeCents int32 `json:"monthly_income_cents"`
	Bookmarks          int32 `json:"bookmarks"`

	Enabled     bool   `json:"enabled"`
	DocumentURL string `json:"document_url,omitempty"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

// AnalyticsMetrics is the caller-supplied portion of an analytics record.
type AnalyticsMetrics struct {
	FeasibilityScore int32 `json:"feasibility_score"`
	ProfitMarginBps  int32 `json:"profit_margin_bps"`
	PaybackMonths    int32 `json:"payback_months"`
	RequiredFunding  int32 `json:"required_funding_cents"`
}

// DeclineFeedback is the free-text feedback an analyst records when
// declining a project. At most one current feedback exists per project.
type DeclineFeedback struct {
	ID        int32  `json:"id"`
	ProjectID int32  `json:"project_id"`
	AnalystID int32  `json:"analyst_id"`
	Text      string `json:"text"`
	CreatedOn string `json:"created_on"`
}
