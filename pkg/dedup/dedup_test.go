package dedup

import (
	"testing"
	"time"
)

func TestShouldProcess_DropsDuplicates(t *testing.T) {
	t.Parallel()
	d := New(time.Minute, 100)

	if !d.ShouldProcess("cmd-1") {
		t.Fatalf("first sight must be processed")
	}
	if d.ShouldProcess("cmd-1") {
		t.Fatalf("redelivery must be dropped")
	}
	if !d.ShouldProcess("cmd-2") {
		t.Fatalf("distinct id must be processed")
	}
}

func TestShouldProcess_EmptyIDAlwaysProcessed(t *testing.T) {
	t.Parallel()
	d := New(time.Minute, 100)

	if !d.ShouldProcess("") || !d.ShouldProcess("") {
		t.Fatalf("empty ids must never be deduplicated")
	}
}

func TestShouldProcess_TTLExpiry(t *testing.T) {
	t.Parallel()
	d := New(10*time.Millisecond, 100)

	if !d.ShouldProcess("cmd-1") {
		t.Fatalf("first sight must be processed")
	}
	time.Sleep(20 * time.Millisecond)
	if !d.ShouldProcess("cmd-1") {
		t.Fatalf("expired id must be processed again")
	}
}
