// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package duplex_test

import (
	"fmt"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/lockless"
	"code.hybscloud.com/lockless/duplex"
)

func TestRunErrorSuccess(t *testing.T) {
	client := duplex.SendThen(42, duplex.CloseDone("ok"))
	server := duplex.RecvBind(func(n int) kont.Eff[string] {
		return duplex.CloseDone(fmt.Sprintf("got %d", n))
	})

	clientResult, serverResult := duplex.RunError[string, string, string](client, server)
	if cv, ok := clientResult.GetRight(); !ok || cv != "ok" {
		t.Fatalf("client got (%q, right=%v), want Right %q", cv, ok, "ok")
	}
	if sv, ok := serverResult.GetRight(); !ok || sv != "got 42" {
		t.Fatalf("server got (%q, right=%v), want Right %q", sv, ok, "got 42")
	}
}

func TestRunErrorThrow(t *testing.T) {
	client := duplex.SendThen(42,
		kont.ThrowError[string, string]("boom"),
	)
	server := duplex.RecvBind(func(n int) kont.Eff[string] {
		return duplex.CloseDone(fmt.Sprintf("got %d", n))
	})

	clientResult, _ := duplex.RunError[string, string, string](client, server)
	if !clientResult.IsLeft() {
		t.Fatal("client expected Left, got Right")
	}
	if errVal, _ := clientResult.GetLeft(); errVal != "boom" {
		t.Fatalf("client error got %q, want %q", errVal, "boom")
	}
}

func TestRunErrorCatchRecovery(t *testing.T) {
	protocol := kont.Bind(
		kont.CatchError(
			kont.ThrowError[string, string]("fail"),
			func(e string) kont.Eff[string] {
				return kont.Pure("recovered: " + e)
			},
		),
		func(s string) kont.Eff[string] {
			return duplex.SendThen(s, duplex.CloseDone(s))
		},
	)
	server := duplex.RecvBind(func(s string) kont.Eff[string] {
		return duplex.CloseDone(s)
	})

	clientResult, serverResult := duplex.RunError[string, string, string](protocol, server)
	if cv, ok := clientResult.GetRight(); !ok || cv != "recovered: fail" {
		t.Fatalf("client got (%q, right=%v)", cv, ok)
	}
	if sv, ok := serverResult.GetRight(); !ok || sv != "recovered: fail" {
		t.Fatalf("server got (%q, right=%v)", sv, ok)
	}
}

func TestExecErrorConcurrent(t *testing.T) {
	skipRace(t)
	epA, epB := duplex.New()

	var clientResult kont.Either[string, string]
	done := make(chan struct{})
	go func() {
		clientResult = duplex.ExecError[string](epA, duplex.SendThen(42, duplex.CloseDone("ok")))
		close(done)
	}()
	serverResult := duplex.ExecError[string](epB, duplex.RecvBind(func(n int) kont.Eff[string] {
		return duplex.CloseDone(fmt.Sprintf("got %d", n))
	}))
	<-done

	if cv, ok := clientResult.GetRight(); !ok || cv != "ok" {
		t.Fatalf("client got (%q, right=%v)", cv, ok)
	}
	if sv, ok := serverResult.GetRight(); !ok || sv != "got 42" {
		t.Fatalf("server got (%q, right=%v)", sv, ok)
	}
}

func TestStepErrorThrowDiscards(t *testing.T) {
	ep, _ := duplex.New()
	protocol := duplex.SendThen(1, kont.ThrowError[string, int]("stop"))

	result, susp := duplex.StepError[string](protocol)
	for susp != nil {
		var err error
		result, susp, err = duplex.AdvanceError[string](ep, susp)
		if err != nil && !lockless.IsWouldBlock(err) {
			t.Fatalf("advance: %v", err)
		}
	}
	if errVal, ok := result.GetLeft(); !ok || errVal != "stop" {
		t.Fatalf("got (%q, left=%v), want Left %q", errVal, ok, "stop")
	}
}
