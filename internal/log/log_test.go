package log

import "testing"

func TestNopBeforeInit(t *testing.T) {
	// Helpers must be usable before Init
	Debugw("debug", "k", 1)
	Infow("info")
	With("run", "x").Infow("child")
	Sync()
}

func TestInit(t *testing.T) {
	for _, debug := range []bool{true, false} {
		if err := Init(debug); err != nil {
			t.Fatalf("Init(%v): %v", debug, err)
		}
		if Sugared() == nil {
			t.Fatalf("Init(%v) left a nil logger", debug)
		}
		Infof("initialised debug=%v", debug)
	}
}
