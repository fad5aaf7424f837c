package midi

import (
	"fmt"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// Driver sends Lumatone commands to an open MIDI output port.
type Driver struct {
	port drivers.Out
	send func(msg gomidi.Message) error
}

// OutPortNames lists the names of the available MIDI output ports.
func OutPortNames() []string {
	ports := gomidi.GetOutPorts()
	names := make([]string, 0, len(ports))
	for _, p := range ports {
		names = append(names, p.String())
	}
	return names
}

// Connect opens the first output port whose name contains nameFragment
// (case-insensitive).
func Connect(nameFragment string) (*Driver, error) {
	want := strings.ToLower(nameFragment)
	for _, port := range gomidi.GetOutPorts() {
		if !strings.Contains(strings.ToLower(port.String()), want) {
			continue
		}
		send, err := gomidi.SendTo(port)
		if err != nil {
			return nil, fmt.Errorf("open output %q: %w", port.String(), err)
		}
		return &Driver{port: port, send: send}, nil
	}
	return nil, fmt.Errorf("no MIDI output port matching %q", nameFragment)
}

// PortName returns the connected port's name.
func (d *Driver) PortName() string {
	return d.port.String()
}

// Send transmits one command as a sysex message.
func (d *Driver) Send(cmd EncodedSysex) error {
	return d.send(gomidi.SysEx(cmd))
}

// SendAll transmits commands in order, stopping at the first error.
func (d *Driver) SendAll(cmds []EncodedSysex) error {
	for i, cmd := range cmds {
		if err := d.Send(cmd); err != nil {
			return fmt.Errorf("send command %d: %w", i, err)
		}
	}
	return nil
}

// Close releases the underlying MIDI driver.
func Close() {
	gomidi.CloseDriver()
}
