package vigilio

import "context"

// Upstream defines the operations the Vigilio service exposes.
type Upstream interface {
	GetFundTypes(ctx context.Context) ([]FundType, error)

	ListShareHolders(ctx context.Context, fundType string) ([]ShareHolder, error)
	ShareHoldersSummary(ctx context.Context, f SummaryFilter) ([]ShareHolderSummary, error)
	ExportShareHoldersSummaryExcel(ctx context.Context, e SummaryExport) (ExcelFile, error)
	GetShareHolderForDate(ctx context.Context, f ForDateFilter) (ShareHolderForDate, error)
	GetShareHolderDetail(ctx context.Context, id int32, fund string) (ShareHolderDetail, error)
	ExportShareHolderExcel(ctx context.Context, id int32, fund string) (ExcelFile, error)

	ListCashFlows(ctx context.Context, f CashFlowFilter) ([]CashFlow, error)
	GetCashFlowDetail(ctx context.Context, f CashFlowDetailFilter) ([]CashFlowDetail, error)

	ListTotalReturns(ctx context.Context, f TotalReturnFilter) ([]FundReturn, error)
	ListEtfReturns(ctx context.Context, f EtfReturnFilter) ([]FundReturn, error)

	GetNavTrend(ctx context.Context, fundID int32) (NavTrend, error)
	GetSplits(ctx context.Context, fundID int32) ([]Split, error)
	GetProfits(ctx context.Context, fundID int32) ([]Profit, error)
	GetPrices(ctx context.Context, fundID int32) ([]Price, error)

	// Ping reports whether the service answers a cheap call.
	Ping(ctx context.Context) error
}
