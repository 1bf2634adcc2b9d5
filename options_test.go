package surfacetexture

import "testing"

func TestOptionDefaults(t *testing.T) {
	c := defaultConfig()
	if c.useFenceSync || c.allowDequeueCurrent {
		t.Errorf("defaultConfig() = %+v, want both false", c)
	}
}

func TestUseFenceSyncOption(t *testing.T) {
	c := defaultConfig()
	UseFenceSync(true)(&c)
	if !c.useFenceSync {
		t.Errorf("UseFenceSync(true) did not set useFenceSync")
	}
}

func TestAllowDequeueCurrentBufferOption(t *testing.T) {
	c := defaultConfig()
	AllowDequeueCurrentBuffer(true)(&c)
	if !c.allowDequeueCurrent {
		t.Errorf("AllowDequeueCurrentBuffer(true) did not set allowDequeueCurrent")
	}
}
