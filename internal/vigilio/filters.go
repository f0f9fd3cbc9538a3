package vigilio

// Empty strings and zero ids mean "not set"; the upstream treats them as no filter.

type SummaryFilter struct {
	Date     string
	FundType string
	Search   string
	Ordering string
}

type SummaryExport struct {
	FundType string
	Date     string
}

type ForDateFilter struct {
	ShareHolderID int32
	Date          string
	FundType      string
}

type CashFlowFilter struct {
	StartDate     string
	EndDate       string
	InstituteKind string
}

type CashFlowDetailFilter struct {
	FundID        int32
	StartDate     string
	EndDate       string
	FundType      string
	InstituteKind string
}

type TotalReturnFilter struct {
	FundType      string
	FundID        int32
	InstituteKind string
	Date          string
}

type EtfReturnFilter struct {
	FundID        int32
	InstituteKind string
	Date          string
}
