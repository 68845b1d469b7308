package soitin

type AudioSink interface {
	PlayTone(tone Tone) error
	Close() error
}

type AudioContext interface {
	Output() AudioSink
	Close() error
}
