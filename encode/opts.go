package encode

type encState struct {
	showClass      bool
	showProperties bool
	warn           func(msg string)
}

type Option func(*encState)

// ShowClass includes the [class] bracket on record header lines.
func ShowClass(v bool) Option {
	return func(es *encState) { es.showClass = v }
}

// ShowProperties includes property lines under each record header.
func ShowProperties(v bool) Option {
	return func(es *encState) { es.showProperties = v }
}

// Warn installs a sink for non-fatal diagnostics, such as unsupported
// property types. Diagnostics never abort an encode.
func Warn(f func(msg string)) Option {
	return func(es *encState) { es.warn = f }
}

func newEncState(opts []Option) *encState {
	es := &encState{showProperties: true}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *encState) warnf(msg string) {
	if es.warn != nil {
		es.warn(msg)
	}
}
