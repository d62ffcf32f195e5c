package log

type yamlDoc struct {
	PerEvaluation []Record `yaml:"per_evaluation"`
	PerIteration  []Record `yaml:"per_iteration"`
}

// MarshalYAML implements yaml.Marshaler, serializing only the recorded
// streams — triggers and lenses are Go closures with no stable
// representation outside the process.
func (l *Log[E]) MarshalYAML() (any, error) {
	return yamlDoc{PerEvaluation: l.perEvaluation, PerIteration: l.perIteration}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, restoring the recorded
// streams into a zero-value Log. Triggers and lenses must be
// re-registered by the caller; a deserialized Log is read-only history.
func (l *Log[E]) UnmarshalYAML(unmarshal func(any) error) error {
	var doc yamlDoc
	if err := unmarshal(&doc); err != nil {
		return err
	}
	l.perEvaluation = doc.PerEvaluation
	l.perIteration = doc.PerIteration
	return nil
}
