package kernel

import "testing"

func TestContextRecvClosed(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	if !cap.Valid() {
		t.Fatal("expected valid capability")
	}

	ctx := &Context{k: k, taskID: 1}
	ch, ok := ctx.RecvChan(cap.Restrict(RightRecv))
	if !ok || ch == nil {
		t.Fatal("expected recv channel")
	}

	k.CloseEndpoint(cap)

	if _, ok := ctx.Recv(cap.Restrict(RightRecv)); ok {
		t.Fatal("expected Recv to fail after close")
	}
	if _, ok := ctx.TryRecv(cap.Restrict(RightRecv)); ok {
		t.Fatal("expected TryRecv to fail after close")
	}
}

func TestContextSendClosed(t *testing.T) {
	k := New()
	cap := k.NewEndpoint(RightSend | RightRecv)
	if !cap.Valid() {
		t.Fatal("expected valid capability")
	}

	ctx := &Context{k: k, taskID: 1}
	k.CloseEndpoint(cap)
	k.CloseEndpoint(cap)

	res := ctx.SendToCapResult(cap.Restrict(RightSend), 1, []byte("x"), Capability{})
	if res != SendErrNoEndpoint {
		t.Fatalf("expected SendErrNoEndpoint, got %s", res)
	}
}

func TestContextSendRights(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	if res := ctx.SendToCapResult(ep.Restrict(RightRecv), 1, nil, Capability{}); res != SendErrToNoSendRight {
		t.Fatalf("expected SendErrToNoSendRight, got %s", res)
	}
	if res := ctx.SendToCapResult(Capability{}, 1, nil, Capability{}); res != SendErrInvalidToCap {
		t.Fatalf("expected SendErrInvalidToCap, got %s", res)
	}
	if res := ctx.SendToCapResult(ep, 1, make([]byte, MaxMessageBytes+1), Capability{}); res != SendErrPayloadTooLarge {
		t.Fatalf("expected SendErrPayloadTooLarge, got %s", res)
	}
	if _, ok := ctx.RecvChan(ep.Restrict(RightSend)); ok {
		t.Fatal("expected RecvChan to require the recv right")
	}

	var nilCtx *Context
	if res := nilCtx.SendToCapResult(ep, 1, nil, Capability{}); res != SendErrInvalidFromCap {
		t.Fatalf("expected SendErrInvalidFromCap, got %s", res)
	}
}

func TestContextSendCarriesPayloadAndCap(t *testing.T) {
	k := New()
	ep := k.NewEndpoint(RightSend | RightRecv)
	reply := k.NewEndpoint(RightSend | RightRecv)
	ctx := &Context{k: k, taskID: 1}

	if !ctx.SendTo(ep, 7, []byte("hello")) {
		t.Fatal("expected send to succeed")
	}
	if res := ctx.SendToCapResult(ep, 8, nil, reply.Restrict(RightSend)); res != SendOK {
		t.Fatalf("expected SendOK, got %s", res)
	}

	msg, ok := ctx.TryRecv(ep)
	if !ok {
		t.Fatal("expected message")
	}
	if msg.Kind != 7 || string(msg.Payload()) != "hello" {
		t.Fatalf("unexpected message kind=%d payload=%q", msg.Kind, msg.Payload())
	}

	msg, ok = ctx.Recv(ep)
	if !ok || msg.Kind != 8 {
		t.Fatalf("unexpected second message ok=%v kind=%d", ok, msg.Kind)
	}
	if !msg.Cap.Valid() || msg.Cap.canRecv() {
		t.Fatal("expected transferred send-only capability")
	}

	if _, ok := ctx.TryRecv(ep); ok {
		t.Fatal("expected empty queue")
	}
}
