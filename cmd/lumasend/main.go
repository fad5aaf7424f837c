// lumasend pushes a stored keymap to a Lumatone over MIDI.
package main

import (
	"fmt"
	"os"

	"tonewheel/config"
	"tonewheel/keymap"
	"tonewheel/midi"
	"tonewheel/theme"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "show":
		showKeymap()
	case "send":
		sendKeymap()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("lumasend - push keymaps to a Lumatone")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list           - List all MIDI output ports")
	fmt.Println("  show <id>      - Print the commands a keymap expands to")
	fmt.Println("  send <id>      - Send a keymap to the configured device port")
}

func listPorts() {
	names := midi.OutPortNames()
	defer midi.Close()

	if len(names) == 0 {
		fmt.Println("no MIDI output ports found")
		return
	}
	for _, name := range names {
		fmt.Println(" ", name)
	}
}

// loadHarmonic reads the keymap id named on the command line and requires
// it to be the harmonic variant.
func loadHarmonic() (*keymap.Harmonic, *theme.WheelPalette, error) {
	if len(os.Args) < 3 {
		return nil, nil, fmt.Errorf("missing keymap id")
	}

	dir, err := keymap.DefaultDir()
	if err != nil {
		return nil, nil, err
	}
	km, err := keymap.NewStore(dir).Load(os.Args[2])
	if err != nil {
		return nil, nil, err
	}

	switch km := km.(type) {
	case *keymap.Harmonic:
		pal, err := theme.NewWheelPalette(km.Tuning().Divisions())
		if err != nil {
			return nil, nil, err
		}
		return km, pal, nil
	case *keymap.Freeform:
		return nil, nil, fmt.Errorf("keymap %q is freeform; only harmonic keymaps convert to commands", km.ID())
	default:
		return nil, nil, fmt.Errorf("unsupported keymap type %T", km)
	}
}

func showKeymap() {
	km, pal, err := loadHarmonic()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cmds := midi.KeymapCommands(km, pal)
	fmt.Printf("%s: %d commands\n", km.ID(), len(cmds))
	for _, c := range cmds {
		fmt.Printf("  %x\n", []byte(c))
	}
}

func sendKeymap() {
	km, pal, err := loadHarmonic()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	drv, err := midi.Connect(cfg.Device.PortName)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer midi.Close()

	cmds := midi.KeymapCommands(km, pal)
	if err := drv.SendAll(cmds); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("sent %d commands to %s\n", len(cmds), drv.PortName())
}
