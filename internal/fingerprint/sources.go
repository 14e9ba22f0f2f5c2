package fingerprint

import (
	"context"
	"errors"
	"net"
	"os"
	"os/exec"
	"runtime"
	"slices"
	"strings"
)

// DefaultSources returns the platform entropy sources in digest order.
func DefaultSources() []Source {
	return []Source{
		fileSource{name: "machine_id", paths: []string{"/etc/machine-id", "/var/lib/dbus/machine-id"}},
		hardwareUUIDSource{},
		funcSource{name: "hostname", fn: func(context.Context) (string, error) { return os.Hostname() }},
		funcSource{name: "platform", fn: platform},
		funcSource{name: "mac", fn: macAddresses},
	}
}

// StaticSource returns a source that always yields value.
func StaticSource(name, value string) Source {
	return funcSource{name: name, fn: func(context.Context) (string, error) { return value, nil }}
}

type funcSource struct {
	name string
	fn   func(context.Context) (string, error)
}

func (s funcSource) Name() string { return s.name }

func (s funcSource) Collect(ctx context.Context) (string, error) { return s.fn(ctx) }

// fileSource reads the first non-empty file of paths.
type fileSource struct {
	name  string
	paths []string
}

func (s fileSource) Name() string { return s.name }

func (s fileSource) Collect(context.Context) (string, error) {
	for _, p := range s.paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			return v, nil
		}
	}
	return "", nil
}

// hardwareUUIDSource reads the board UUID the way each OS exposes it.
type hardwareUUIDSource struct{}

func (hardwareUUIDSource) Name() string { return "hardware_uuid" }

func (hardwareUUIDSource) Collect(ctx context.Context) (string, error) {
	switch runtime.GOOS {
	case "linux":
		return fileSource{paths: []string{"/sys/class/dmi/id/product_uuid"}}.Collect(ctx)
	case "darwin":
		out, err := exec.CommandContext(ctx, "ioreg", "-rd1", "-c", "IOPlatformExpertDevice").Output()
		if err != nil {
			return "", err
		}
		return parseIORegUUID(string(out))
	case "windows":
		out, err := exec.CommandContext(ctx, "wmic", "csproduct", "get", "UUID").Output()
		if err != nil {
			return "", err
		}
		return parseWMICValue(string(out), "UUID"), nil
	default:
		return "", nil
	}
}

func parseIORegUUID(out string) (string, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "IOPlatformUUID") {
			continue
		}
		parts := strings.Split(line, "\"")
		if len(parts) >= 4 {
			return parts[3], nil
		}
	}
	return "", errors.New("no IOPlatformUUID found")
}

func parseWMICValue(out, header string) string {
	for _, line := range strings.Split(out, "\n") {
		v := strings.TrimSpace(line)
		if v != "" && !strings.EqualFold(v, header) {
			return v
		}
	}
	return ""
}

func platform(context.Context) (string, error) {
	return runtime.GOOS + "/" + runtime.GOARCH, nil
}

// macAddresses joins the hardware addresses of non-loopback interfaces in
// sorted order so interface enumeration order does not matter.
func macAddresses(context.Context) (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", err
	}

	var macs []string
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || len(iface.HardwareAddr) == 0 {
			continue
		}
		macs = append(macs, iface.HardwareAddr.String())
	}
	slices.Sort(macs)
	macs = slices.Compact(macs)

	return strings.Join(macs, ","), nil
}
