package vigilio

import (
	"context"
	"sync"
)

// Call records one request received by InMemoryUpstream.
type Call struct {
	Method    string
	Args      any
	RequestID string
}

// InMemoryUpstream is an in-memory implementation of Upstream. It serves the
// canned data in its exported fields and records every call.
type InMemoryUpstream struct {
	FundTypes       []FundType
	ShareHolders    []ShareHolder
	Summary         []ShareHolderSummary
	SummaryExcel    ExcelFile
	ForDate         ShareHolderForDate
	Detail          ShareHolderDetail
	ShareHolderXLSX ExcelFile
	CashFlows       []CashFlow
	CashFlowDetails []CashFlowDetail
	TotalReturns    []FundReturn
	EtfReturns      []FundReturn
	NavTrend        NavTrend
	Splits          []Split
	Profits         []Profit
	Prices          []Price

	// Err, when set, is returned by every call.
	Err error

	mu    sync.Mutex
	calls []Call
}

// NewInMemoryUpstream creates an empty InMemoryUpstream.
func NewInMemoryUpstream() *InMemoryUpstream {
	return &InMemoryUpstream{}
}

func (m *InMemoryUpstream) record(ctx context.Context, method string, args any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Method: method, Args: args, RequestID: RequestIDFrom(ctx)})
	return m.Err
}

// Calls returns a copy of the recorded calls.
func (m *InMemoryUpstream) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// LastCall returns the most recent call, or false when none was made.
func (m *InMemoryUpstream) LastCall() (Call, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return Call{}, false
	}
	return m.calls[len(m.calls)-1], true
}

// Reset clears the recorded calls, canned data and error.
func (m *InMemoryUpstream) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FundTypes, m.ShareHolders, m.Summary = nil, nil, nil
	m.SummaryExcel, m.ShareHolderXLSX = ExcelFile{}, ExcelFile{}
	m.ForDate, m.Detail = ShareHolderForDate{}, ShareHolderDetail{}
	m.CashFlows, m.CashFlowDetails = nil, nil
	m.TotalReturns, m.EtfReturns = nil, nil
	m.NavTrend = NavTrend{}
	m.Splits, m.Profits, m.Prices = nil, nil, nil
	m.Err = nil
	m.calls = nil
}

func (m *InMemoryUpstream) GetFundTypes(ctx context.Context) ([]FundType, error) {
	if err := m.record(ctx, "GetFundTypes", nil); err != nil {
		return nil, err
	}
	return m.FundTypes, nil
}

func (m *InMemoryUpstream) ListShareHolders(ctx context.Context, fundType string) ([]ShareHolder, error) {
	if err := m.record(ctx, "ListShareHolders", fundType); err != nil {
		return nil, err
	}
	return m.ShareHolders, nil
}

func (m *InMemoryUpstream) ShareHoldersSummary(ctx context.Context, f SummaryFilter) ([]ShareHolderSummary, error) {
	if err := m.record(ctx, "ShareHoldersSummary", f); err != nil {
		return nil, err
	}
	return m.Summary, nil
}

func (m *InMemoryUpstream) ExportShareHoldersSummaryExcel(ctx context.Context, e SummaryExport) (ExcelFile, error) {
	if err := m.record(ctx, "ExportShareHoldersSummaryExcel", e); err != nil {
		return ExcelFile{}, err
	}
	return m.SummaryExcel, nil
}

func (m *InMemoryUpstream) GetShareHolderForDate(ctx context.Context, f ForDateFilter) (ShareHolderForDate, error) {
	if err := m.record(ctx, "GetShareHolderForDate", f); err != nil {
		return ShareHolderForDate{}, err
	}
	return m.ForDate, nil
}

// DetailArgs is the Args value recorded for shareholder detail and export calls.
type DetailArgs struct {
	ID   int32
	Fund string
}

func (m *InMemoryUpstream) GetShareHolderDetail(ctx context.Context, id int32, fund string) (ShareHolderDetail, error) {
	if err := m.record(ctx, "GetShareHolderDetail", DetailArgs{ID: id, Fund: fund}); err != nil {
		return ShareHolderDetail{}, err
	}
	return m.Detail, nil
}

func (m *InMemoryUpstream) ExportShareHolderExcel(ctx context.Context, id int32, fund string) (ExcelFile, error) {
	if err := m.record(ctx, "ExportShareHolderExcel", DetailArgs{ID: id, Fund: fund}); err != nil {
		return ExcelFile{}, err
	}
	return m.ShareHolderXLSX, nil
}

func (m *InMemoryUpstream) ListCashFlows(ctx context.Context, f CashFlowFilter) ([]CashFlow, error) {
	if err := m.record(ctx, "ListCashFlows", f); err != nil {
		return nil, err
	}
	return m.CashFlows, nil
}

func (m *InMemoryUpstream) GetCashFlowDetail(ctx context.Context, f CashFlowDetailFilter) ([]CashFlowDetail, error) {
	if err := m.record(ctx, "GetCashFlowDetail", f); err != nil {
		return nil, err
	}
	return m.CashFlowDetails, nil
}

func (m *InMemoryUpstream) ListTotalReturns(ctx context.Context, f TotalReturnFilter) ([]FundReturn, error) {
	if err := m.record(ctx, "ListTotalReturns", f); err != nil {
		return nil, err
	}
	return m.TotalReturns, nil
}

func (m *InMemoryUpstream) ListEtfReturns(ctx context.Context, f EtfReturnFilter) ([]FundReturn, error) {
	if err := m.record(ctx, "ListEtfReturns", f); err != nil {
		return nil, err
	}
	return m.EtfReturns, nil
}

func (m *InMemoryUpstream) GetNavTrend(ctx context.Context, fundID int32) (NavTrend, error) {
	if err := m.record(ctx, "GetNavTrend", fundID); err != nil {
		return NavTrend{}, err
	}
	return m.NavTrend, nil
}

func (m *InMemoryUpstream) GetSplits(ctx context.Context, fundID int32) ([]Split, error) {
	if err := m.record(ctx, "GetSplits", fundID); err != nil {
		return nil, err
	}
	return m.Splits, nil
}

func (m *InMemoryUpstream) GetProfits(ctx context.Context, fundID int32) ([]Profit, error) {
	if err := m.record(ctx, "GetProfits", fundID); err != nil {
		return nil, err
	}
	return m.Profits, nil
}

func (m *InMemoryUpstream) GetPrices(ctx context.Context, fundID int32) ([]Price, error) {
	if err := m.record(ctx, "GetPrices", fundID); err != nil {
		return nil, err
	}
	return m.Prices, nil
}

func (m *InMemoryUpstream) Ping(ctx context.Context) error {
	return m.record(ctx, "Ping", nil)
}
