package caseconv

import (
	"context"
	"testing"
	"time"

	"github.com/baditaflorin/go_text_utils/internal/warmup"
)

func TestConverter(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	tests := []struct {
		name      string
		input     string
		wantSnake string
		wantCamel string
	}{
		{
			name:      "two words",
			input:     "Hello World",
			wantSnake: "hello_world",
			wantCamel: "helloWorld",
		},
		{
			name:      "camel humps",
			input:     "HelloWorld",
			wantSnake: "hello_world",
			wantCamel: "helloworld",
		},
		{
			name:      "empty",
			input:     "",
			wantSnake: "",
			wantCamel: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Snake(tc.input); got != tc.wantSnake {
				t.Errorf("Snake(%q) = %q, want %q", tc.input, got, tc.wantSnake)
			}
			if got := c.Camel(tc.input); got != tc.wantCamel {
				t.Errorf("Camel(%q) = %q, want %q", tc.input, got, tc.wantCamel)
			}
		})
	}
}

func TestConverterWarmUp(t *testing.T) {
	c, err := New(WithWarmUpConfig(warmup.Config{
		Concurrency:    2,
		Iterations:     4,
		SampleTextSize: 64,
		Duration:       time.Second,
		ForceGC:        false,
	}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	// Results after warm-up are identical to cold results.
	if got := c.Snake("WarmedUp"); got != "warmed_up" {
		t.Errorf("Snake after warmup = %q, want %q", got, "warmed_up")
	}

	// A second warm-up is a no-op.
	c.WarmUp(context.Background(), warmup.DefaultConfig())
}

func TestConverterConcurrent(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				if got := c.Snake("SharedState Check"); got != "shared_state_check" {
					t.Errorf("Snake = %q, want %q", got, "shared_state_check")
					return
				}
				if got := c.Camel("shared state check"); got != "sharedStateCheck" {
					t.Errorf("Camel = %q, want %q", got, "sharedStateCheck")
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
