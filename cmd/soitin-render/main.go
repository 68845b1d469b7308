package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/soitin/soitin"
	"github.com/soitin/soitin/oto"
	"github.com/soitin/soitin/version"
)

func main() {
	oscillator := flag.String("O", "", "Render a single ad hoc partial with this oscillator kind: sine, square, sawtooth, triangle, noise or cracks.")
	pitch := flag.Float64("f", 0, "Pitch of the tone, in oscillations per second.")
	length := flag.Float64("l", 0, "Duration of the tone in seconds.")
	stress := flag.Float64("s", 1, "Intensity of the tone.")
	attack := flag.String("A", "", "Attack shape descriptor.")
	sustain := flag.String("S", "", "Sustain shape descriptor (if attack is not given, simply the shape).")
	tail := flag.String("T", "", "Tail shape descriptor, to regain minimal amplitude when transitioning from sustain to release.")
	release := flag.String("R", "", "Release shape descriptor, not included in the specified length.")
	am := flag.String("am", "", "Amplitude modulation descriptor.")
	fm := flag.String("fm", "", "Frequency modulation descriptor.")
	ws := flag.String("ws", "", "Waveshape descriptor, the form of each oscillation, projected.")
	stdout := flag.Bool("stdout", false, "Do not write files; write to standard output instead.")
	directory := flag.String("o", "", "Directory where to output all files. The directory and its parents are created if needed. By default, everything is placed in the same directory where the instrument file is.")
	play := flag.Bool("p", false, "Play the rendered tone (default behaviour when no other output is defined).")
	rawOut := flag.Bool("r", false, "Output the result as a .raw file; tones as float32 buffers, bare shape/envelope curves as float32 samples.")
	wavOut := flag.Bool("w", false, "Output the rendered tone as a .wav file. By default, saves a mono float32 buffer to disk.")
	pcm := flag.Bool("c", false, "Convert audio to 16-bit signed PCM when outputting.")
	versionFlag := flag.Bool("v", false, "Print version.")
	help := flag.Bool("h", false, "Show help.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	instrfile := flag.Arg(0)

	output := func(name, extension string, contents []byte) error {
		if *stdout {
			_, err := os.Stdout.Write(contents)
			return err
		}
		dir := *directory
		if dir == "" {
			var err error
			dir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("could not get working directory, specify the output directory explicitly: %v", err)
			}
		}
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("could not create output directory %v: %v", dir, err)
		}
		f := filepath.Join(dir, name+extension)
		if err := os.WriteFile(f, contents, 0644); err != nil {
			return fmt.Errorf("could not write file %v: %v", f, err)
		}
		return nil
	}

	outputTone := func(name string, tone soitin.Tone) error {
		doPlay := *play || (!*rawOut && !*wavOut)
		if *rawOut {
			raw, err := soitin.Raw(tone, *pcm)
			if err != nil {
				return fmt.Errorf("could not generate .raw file: %v", err)
			}
			if err := output(name, ".raw", raw); err != nil {
				return fmt.Errorf("error outputting .raw file: %v", err)
			}
		}
		if *wavOut {
			wav, err := soitin.Wav(tone, *pcm)
			if err != nil {
				return fmt.Errorf("could not generate .wav file: %v", err)
			}
			if err := output(name, ".wav", wav); err != nil {
				return fmt.Errorf("error outputting .wav file: %v", err)
			}
		}
		if doPlay {
			audioContext, err := oto.NewContext()
			if err != nil {
				return fmt.Errorf("could not acquire oto AudioContext: %v", err)
			}
			defer audioContext.Close()
			if err := audioContext.Output().PlayTone(tone); err != nil {
				return fmt.Errorf("could not play the tone: %v", err)
			}
		}
		return nil
	}

	outputCurve := func(name string, curve []float64) error {
		if *rawOut {
			raw, err := soitin.Raw(soitin.Tone(curve), false)
			if err != nil {
				return fmt.Errorf("could not generate .raw file: %v", err)
			}
			if err := output(name, ".raw", raw); err != nil {
				return fmt.Errorf("error outputting .raw file: %v", err)
			}
			return nil
		}
		for _, v := range curve {
			fmt.Println(v)
		}
		return nil
	}

	adHoc := *oscillator != "" || *attack != "" || *sustain != "" || *tail != "" ||
		*release != "" || *am != "" || *fm != "" || *ws != ""

	var err error
	switch {
	case instrfile != "":
		if adHoc {
			err = fmt.Errorf("cannot overwrite an instrument definition with ad hoc oscillator/shape flags")
			break
		}
		if *pitch <= 0 || *length <= 0 {
			err = fmt.Errorf("rendering an instrument tone needs a pitch (-f) and a length (-l)")
			break
		}
		var data []byte
		if data, err = os.ReadFile(instrfile); err != nil {
			err = fmt.Errorf("could not read file %v: %v", instrfile, err)
			break
		}
		var instrument *soitin.Instrument
		if instrument, err = soitin.ReadInstrument(data); err != nil {
			break
		}
		var tone soitin.Tone
		if tone, err = instrument.RenderTone(*pitch, *length, *stress); err != nil {
			break
		}
		_, name := filepath.Split(instrfile)
		err = outputTone(strings.TrimSuffix(name, filepath.Ext(name)), tone)
	case *oscillator != "":
		if *pitch <= 0 || *length <= 0 {
			err = fmt.Errorf("rendering an ad hoc partial needs a pitch (-f) and a length (-l)")
			break
		}
		var partial *soitin.Partial
		if partial, err = soitin.NewPartial(*oscillator, *attack, *sustain, *tail, *release, *am, *fm, *ws); err != nil {
			break
		}
		var samples []float64
		if samples, err = partial.Render(*pitch, *stress, *length); err != nil {
			break
		}
		err = outputTone("tone", soitin.Tone(samples))
	case *attack != "" || *tail != "" || *release != "":
		var envelope *soitin.Envelope
		if envelope, err = soitin.ParseEnvelope(*attack, *sustain, *tail, *release); err != nil {
			break
		}
		var curve []float64
		if curve, err = envelope.Render(*length); err != nil {
			break
		}
		err = outputCurve("envelope", curve)
	case *sustain != "":
		var shape *soitin.Shape
		if shape, err = soitin.ParseShape(*sustain); err != nil {
			break
		}
		if *length <= 0 {
			err = fmt.Errorf("rendering a bare shape needs a length (-l)")
			break
		}
		err = outputCurve("shape", shape.Render(int(*length*soitin.SampleRate+0.5)))
	default:
		flag.Usage()
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Soitin command line utility for rendering a single tone, envelope or shape.\nUsage: %s [flags] [instrument file]\n", os.Args[0])
	flag.PrintDefaults()
}
