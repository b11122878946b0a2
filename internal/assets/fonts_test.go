package assets

import (
	"context"
	"testing"
)

func TestLoadBundledFont(t *testing.T) {
	lib, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lib.Fallback {
		t.Error("bundled font should not need the fallback")
	}

	title := lib.Title.Metrics().Height
	small := lib.Small.Metrics().Height
	if title <= small {
		t.Errorf("title height %v should exceed small height %v", title, small)
	}
}

func TestLoadFallsBack(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() context.Context
		data []byte
	}{
		{"Garbage", context.Background, []byte("not a font")},
		{"Cancelled", func() context.Context {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			return ctx
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tt.data
			if data == nil {
				data = bundled()
			}
			lib, err := LoadFrom(tt.ctx(), data)
			if err == nil {
				t.Fatal("expected an error")
			}
			if lib == nil || !lib.Fallback || lib.Regular == nil {
				t.Errorf("expected a usable fallback library, got %+v", lib)
			}
		})
	}
}
