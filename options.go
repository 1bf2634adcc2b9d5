package surfacetexture

// Option configures a Consumer during construction.
//
// Example:
//
//	c, err := surfacetexture.New(name, target, gpu, q, surfacetexture.UseFenceSync(true))
type Option func(*config)

// config holds optional configuration for Consumer construction.
type config struct {
	useFenceSync        bool
	allowDequeueCurrent bool
}

func defaultConfig() config {
	return config{}
}

// UseFenceSync enables GPU read-completion fencing: when the consumer
// acquires a new buffer, it creates a fence tracking GPU reads of the
// previously current buffer and hands that fence to the queue on release,
// so the producer can wait on it before reusing the buffer. Mutually
// exclusive with AllowDequeueCurrentBuffer.
func UseFenceSync(v bool) Option {
	return func(c *config) { c.useFenceSync = v }
}

// AllowDequeueCurrentBuffer records that the producer may dequeue the
// consumer's currently-bound buffer without the consumer having released it
// first. The Consumer does not forward this setting to the queue; its only
// effect is that New rejects it in combination with UseFenceSync, since
// without a release there is no fence hand-off point.
func AllowDequeueCurrentBuffer(v bool) Option {
	return func(c *config) { c.allowDequeueCurrent = v }
}
