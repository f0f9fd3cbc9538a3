package vigilio

import (
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// request fills a dynamic request message. Zero values are left unset, which
// is what proto3 would send for them anyway.
type request struct {
	m *dynamicpb.Message
}

func newRequest(method string) request {
	return request{m: dynamicpb.NewMessage(Method(method).Input())}
}

func (r request) field(name string) protoreflect.FieldDescriptor {
	fd := r.m.Descriptor().Fields().ByName(protoreflect.Name(name))
	if fd == nil {
		panic("vigilio: " + string(r.m.Descriptor().Name()) + " has no field " + name)
	}
	return fd
}

func (r request) str(name, v string) request {
	if v != "" {
		r.m.Set(r.field(name), protoreflect.ValueOfString(v))
	}
	return r
}

func (r request) i32(name string, v int32) request {
	if v != 0 {
		r.m.Set(r.field(name), protoreflect.ValueOfInt32(v))
	}
	return r
}

// reader pulls typed values out of a dynamic response message.
type reader struct {
	m protoreflect.Message
}

func (r reader) field(name string) protoreflect.FieldDescriptor {
	fd := r.m.Descriptor().Fields().ByName(protoreflect.Name(name))
	if fd == nil {
		panic("vigilio: " + string(r.m.Descriptor().Name()) + " has no field " + name)
	}
	return fd
}

func (r reader) str(name string) string {
	return r.m.Get(r.field(name)).String()
}

func (r reader) i32(name string) int32 {
	return int32(r.m.Get(r.field(name)).Int())
}

func (r reader) f64(name string) float64 {
	return r.m.Get(r.field(name)).Float()
}

func (r reader) boolean(name string) bool {
	return r.m.Get(r.field(name)).Bool()
}

func (r reader) bytes(name string) []byte {
	return r.m.Get(r.field(name)).Bytes()
}

func (r reader) optF64(name string) *float64 {
	fd := r.field(name)
	if !r.m.Has(fd) {
		return nil
	}
	v := r.m.Get(fd).Float()
	return &v
}

func (r reader) msg(name string) reader {
	return reader{m: r.m.Get(r.field(name)).Message()}
}

func (r reader) count(name string) int {
	return r.m.Get(r.field(name)).List().Len()
}

func (r reader) each(name string, fn func(reader)) {
	l := r.m.Get(r.field(name)).List()
	for i := 0; i < l.Len(); i++ {
		fn(reader{m: l.Get(i).Message()})
	}
}

func (r reader) strings(name string) []string {
	l := r.m.Get(r.field(name)).List()
	out := make([]string, l.Len())
	for i := range out {
		out[i] = l.Get(i).String()
	}
	return out
}

func (r reader) floats(name string) []float64 {
	l := r.m.Get(r.field(name)).List()
	out := make([]float64, l.Len())
	for i := range out {
		out[i] = l.Get(i).Float()
	}
	return out
}

func readHistory(r reader) ShareHolderHistory {
	return ShareHolderHistory{
		FundID:      r.i32("fund_id"),
		Fund:        r.str("fund"),
		FundType:    r.str("fund_type"),
		ShareCount:  r.f64("share_count"),
		Value:       r.f64("value"),
		PctOfShares: r.f64("pct_of_shares"),
		Date:        r.str("date"),
	}
}

func readHistories(r reader) []ShareHolderHistory {
	out := make([]ShareHolderHistory, 0, r.count("share_holder_histories"))
	r.each("share_holder_histories", func(h reader) {
		out = append(out, readHistory(h))
	})
	return out
}

func readFundReturns(r reader) []FundReturn {
	out := make([]FundReturn, 0, r.count("returns"))
	r.each("returns", func(x reader) {
		out = append(out, FundReturn{
			ID:            x.i32("id"),
			Date:          x.str("date"),
			FundID:        x.i32("fund_id"),
			FundName:      x.str("fund_name"),
			FundType:      x.str("fund_type"),
			InstituteKind: x.str("institute_kind"),
			LastNav:       x.f64("last_nav"),
			LastNavDate:   x.str("last_nav_date"),
			LastPrice:     x.f64("last_price"),
			LastPriceDate: x.str("last_price_date"),
			HasProfit:     x.boolean("has_profit"),
			HasSplit:      x.boolean("has_split"),
			TotalUnits:    x.f64("total_units"),
			Bubble:        x.f64("bubble"),
			Thirty:        x.f64("thirty"),
			Ninety:        x.f64("ninety"),
			OneEighty:     x.f64("one_eighty"),
			ThreeSixty:    x.f64("three_sixty"),
		})
	})
	return out
}
