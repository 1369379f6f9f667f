package discovery

import (
	"context"
	"errors"
	"net"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexchen/termfolio/internal/version"
)

type fakeAdvertisement struct {
	shutdowns atomic.Int32
}

func (f *fakeAdvertisement) Shutdown() { f.shutdowns.Add(1) }

func stubRegister(t *testing.T, fake *fakeAdvertisement, err error) *[]string {
	t.Helper()
	var gotText []string
	orig := register
	register = func(instance, service, domain string, port int, text []string, ifaces []net.Interface) (advertisement, error) {
		if service != ServiceType || domain != ServiceDomain {
			t.Errorf("register(%q, %q)", service, domain)
		}
		gotText = append([]string{instance}, text...)
		if err != nil {
			return nil, err
		}
		return fake, nil
	}
	t.Cleanup(func() { register = orig })
	return &gotText
}

func TestTXTRecords(t *testing.T) {
	got := TXTRecords(map[string]string{"tls": "1", "app": "other"})
	want := []string{"app=termfolio", "path=/", "tls=1", "version=" + version.Version}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("TXTRecords() = %v, want %v", got, want)
	}
}

func TestAdvertise_ShutdownOnce(t *testing.T) {
	fake := &fakeAdvertisement{}
	got := stubRegister(t, fake, nil)

	shutdown, err := Advertise(context.Background(), "lab", 8080, nil)
	if err != nil {
		t.Fatalf("Advertise() error = %v", err)
	}
	if (*got)[0] != "lab" {
		t.Errorf("instance = %q, want lab", (*got)[0])
	}
	shutdown()
	shutdown()
	if n := fake.shutdowns.Load(); n != 1 {
		t.Errorf("Shutdown called %d times, want 1", n)
	}
}

func TestAdvertise_StopsWithContext(t *testing.T) {
	fake := &fakeAdvertisement{}
	stubRegister(t, fake, nil)

	ctx, cancel := context.WithCancel(context.Background())
	if _, err := Advertise(ctx, "", 8080, nil); err != nil {
		t.Fatalf("Advertise() error = %v", err)
	}
	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for fake.shutdowns.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if fake.shutdowns.Load() != 1 {
		t.Error("advertisement should stop when the context is cancelled")
	}
}

func TestAdvertise_Errors(t *testing.T) {
	stubRegister(t, &fakeAdvertisement{}, errors.New("no multicast interface"))

	if _, err := Advertise(context.Background(), "lab", 0, nil); err == nil {
		t.Error("Advertise() with port 0 should fail")
	}
	_, err := Advertise(context.Background(), "lab", 8080, nil)
	if err == nil || !strings.Contains(err.Error(), "no multicast interface") {
		t.Errorf("Advertise() error = %v", err)
	}
}
