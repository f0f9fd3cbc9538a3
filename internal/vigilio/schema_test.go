package vigilio

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"
)

type protoField struct {
	Label  string
	Type   string
	Name   string
	Number int
}

type protoRPC struct {
	In, Out string
}

type protoFile struct {
	Package  string
	Messages map[string][]protoField
	RPCs     map[string]protoRPC
}

var (
	packageLine = regexp.MustCompile(`^package (\w+);$`)
	messageLine = regexp.MustCompile(`^message (\w+) \{(\})?$`)
	fieldLine   = regexp.MustCompile(`^(?:(repeated|optional) )?(\w+) (\w+) = (\d+);$`)
	rpcLine     = regexp.MustCompile(`^rpc (\w+)\((\w+)\) returns \((\w+)\);$`)
)

func parseProtoFile(t *testing.T, path string) protoFile {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	out := protoFile{Messages: map[string][]protoField{}, RPCs: map[string]protoRPC{}}
	current := ""
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if m := packageLine.FindStringSubmatch(line); m != nil {
			out.Package = m[1]
			continue
		}
		if m := messageLine.FindStringSubmatch(line); m != nil {
			out.Messages[m[1]] = []protoField{}
			if m[2] == "" {
				current = m[1]
			}
			continue
		}
		if m := rpcLine.FindStringSubmatch(line); m != nil {
			out.RPCs[m[1]] = protoRPC{In: m[2], Out: m[3]}
			continue
		}
		if m := fieldLine.FindStringSubmatch(line); m != nil {
			require.NotEmpty(t, current, "field outside a message: %q", line)
			n, err := strconv.Atoi(m[4])
			require.NoError(t, err)
			out.Messages[current] = append(out.Messages[current], protoField{Label: m[1], Type: m[2], Name: m[3], Number: n})
			continue
		}
		if line == "}" {
			current = ""
		}
	}
	require.NoError(t, sc.Err())
	return out
}

func describeSchema(fd protoreflect.FileDescriptor) protoFile {
	out := protoFile{
		Package:  string(fd.Package()),
		Messages: map[string][]protoField{},
		RPCs:     map[string]protoRPC{},
	}
	msgs := fd.Messages()
	for i := 0; i < msgs.Len(); i++ {
		md := msgs.Get(i)
		fields := []protoField{}
		for j := 0; j < md.Fields().Len(); j++ {
			f := md.Fields().Get(j)
			pf := protoField{Type: f.Kind().String(), Name: string(f.Name()), Number: int(f.Number())}
			switch {
			case f.IsList():
				pf.Label = "repeated"
			case f.HasOptionalKeyword():
				pf.Label = "optional"
			}
			if f.Message() != nil {
				pf.Type = string(f.Message().Name())
			}
			fields = append(fields, pf)
		}
		out.Messages[string(md.Name())] = fields
	}
	methods := fd.Services().ByName("VigilioService").Methods()
	for i := 0; i < methods.Len(); i++ {
		m := methods.Get(i)
		out.RPCs[string(m.Name())] = protoRPC{In: string(m.Input().Name()), Out: string(m.Output().Name())}
	}
	return out
}

func TestSchema_MatchesProtoFile(t *testing.T) {
	want := parseProtoFile(t, "../../proto/vigilio.proto")
	require.NotEmpty(t, want.Messages)
	require.Len(t, want.RPCs, 15)

	if diff := cmp.Diff(want, describeSchema(Schema())); diff != "" {
		t.Errorf("proto/vigilio.proto and Schema() differ (-file +schema):\n%s", diff)
	}
}
