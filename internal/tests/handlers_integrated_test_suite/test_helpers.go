package handlers_integrated_test_suite

import (
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	api "github.com/rogerio-castellano/vigilio-gateway/internal/http"
	handler "github.com/rogerio-castellano/vigilio-gateway/internal/http/handlers"
	"github.com/rogerio-castellano/vigilio-gateway/internal/vigilio"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/dynamicpb"
)

// vigilioServer is a loopback gRPC server speaking the Vigilio schema with
// canned protojson replies.
type vigilioServer struct {
	mu       sync.Mutex
	replies  map[string]string
	errs     map[string]error
	requests map[string]string
	md       map[string]metadata.MD
}

func (s *vigilioServer) handle(_ any, stream grpc.ServerStream) error {
	full, _ := grpc.MethodFromServerStream(stream)
	name := full[strings.LastIndex(full, "/")+1:]
	method := vigilio.Method(name)
	if method == nil {
		return status.Errorf(codes.Unimplemented, "unknown method %s", full)
	}

	req := dynamicpb.NewMessage(method.Input())
	if err := stream.RecvMsg(req); err != nil {
		return err
	}
	reqJSON, _ := protojson.MarshalOptions{UseProtoNames: true}.Marshal(req)
	incoming, _ := metadata.FromIncomingContext(stream.Context())

	s.mu.Lock()
	s.requests[name] = string(reqJSON)
	s.md[name] = incoming
	reply, err := s.replies[name], s.errs[name]
	s.mu.Unlock()

	if err != nil {
		return err
	}
	resp := dynamicpb.NewMessage(method.Output())
	if reply != "" {
		if err := protojson.Unmarshal([]byte(reply), resp); err != nil {
			return status.Errorf(codes.Internal, "bad canned reply: %v", err)
		}
	}
	return stream.SendMsg(resp)
}

func (s *vigilioServer) reply(method, json string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[method] = json
}

func (s *vigilioServer) fail(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[method] = err
}

func (s *vigilioServer) request(method string) (string, metadata.MD) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[method], s.md[method]
}

// setupGateway starts a Vigilio server on loopback, dials it the way the
// serve command does and returns the gateway router.
func setupGateway(t *testing.T) (http.Handler, *vigilioServer) {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := &vigilioServer{
		replies:  map[string]string{},
		errs:     map[string]error{},
		requests: map[string]string{},
		md:       map[string]metadata.MD{},
	}
	srv := grpc.NewServer(grpc.UnknownServiceHandler(s.handle))
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	return dialGateway(t, lis.Addr().String()), s
}

func dialGateway(t *testing.T, host string) http.Handler {
	t.Helper()
	client, err := vigilio.Dial(vigilio.DialConfig{Host: host})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	handler.SetUpstream(client)
	api.SetRateLimiter(nil)
	api.SetBanner(nil)
	return api.NewRouter()
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
