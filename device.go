package ledbadge

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/gousb"
)

// USB identity shared by the 11x44 badge family.
const (
	badgeVendorID  = 0x0416
	badgeProductID = 0x5020
)

const (
	// chunkSize is the fixed USB transfer size; the final chunk is
	// zero-padded to this length.
	chunkSize = 64
	// maxBufferSize guards the device's memory. Writing more than this
	// can damage the display.
	maxBufferSize = 8192
)

// Device is an open USB connection to one LED badge.
type Device struct {
	ctx         *gousb.Context
	dev         *gousb.Device
	intf        *gousb.Interface
	releaseIntf func()
	ep          *gousb.OutEndpoint
	desc        string
	chunkDelay  time.Duration
}

// DeviceSelector chooses one badge from the detected badges.
type DeviceSelector interface {
	selectDevice(descs []*gousb.DeviceDesc) (int, error)
}

type deviceIndexSelector int
type deviceAddressSelector struct{ bus, address int }

// DeviceIndex selects a badge by zero-based index in bus/address order.
func DeviceIndex(index int) DeviceSelector {
	return deviceIndexSelector(index)
}

// DeviceAddress selects a badge by USB bus number and device address.
func DeviceAddress(bus, address int) DeviceSelector {
	return deviceAddressSelector{bus: bus, address: address}
}

func (s deviceIndexSelector) selectDevice(descs []*gousb.DeviceDesc) (int, error) {
	idx := int(s)
	if idx < 0 || idx >= len(descs) {
		return 0, fmt.Errorf("badge index out of range: %d (badges=%d)", idx, len(descs))
	}
	return idx, nil
}

func (s deviceAddressSelector) selectDevice(descs []*gousb.DeviceDesc) (int, error) {
	for i, d := range descs {
		if d.Bus == s.bus && d.Address == s.address {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no badge at bus %d address %d", s.bus, s.address)
}

// ListBadges returns a description of every connected badge without
// claiming any of them.
func ListBadges() ([]string, error) {
	ctx := gousb.NewContext()
	defer ctx.Close()

	var out []string
	_, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		if desc.Vendor == badgeVendorID && desc.Product == badgeProductID {
			out = append(out, fmt.Sprintf("%s:%s (bus=%d addr=%d)", desc.Vendor, desc.Product, desc.Bus, desc.Address))
		}
		return false
	})
	if err != nil {
		return nil, &TransportError{Reason: "enumerate usb devices", Err: err}
	}
	sort.Strings(out)
	return out, nil
}

// Open claims a connected badge and prepares its OUT endpoint for
// writing. When no selector is provided, it opens the first badge in
// bus/address order.
func Open(selectors ...DeviceSelector) (*Device, error) {
	ctx := gousb.NewContext()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Vendor == badgeVendorID && desc.Product == badgeProductID
	})
	if err != nil {
		closeAll(devs)
		ctx.Close()
		return nil, &TransportError{Reason: "enumerate usb devices", Err: err}
	}
	if len(devs) == 0 {
		ctx.Close()
		return nil, &TransportError{Reason: "no badge found (vendor 0416, product 5020)"}
	}

	sort.Slice(devs, func(i, j int) bool {
		a, b := devs[i].Desc, devs[j].Desc
		if a.Bus != b.Bus {
			return a.Bus < b.Bus
		}
		return a.Address < b.Address
	})
	descs := make([]*gousb.DeviceDesc, len(devs))
	for i, d := range devs {
		descs[i] = d.Desc
	}

	chosen, err := resolveDevice(descs, selectors)
	if err != nil {
		closeAll(devs)
		ctx.Close()
		return nil, err
	}
	dev := devs[chosen]
	for i, d := range devs {
		if i != chosen {
			d.Close()
		}
	}

	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		ctx.Close()
		return nil, &TransportError{Reason: "detach kernel driver", Err: err}
	}

	intf, releaseIntf, err := dev.DefaultInterface()
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, &TransportError{Reason: "claim interface", Err: err}
	}

	ep, err := outEndpoint(intf)
	if err != nil {
		releaseIntf()
		dev.Close()
		ctx.Close()
		return nil, err
	}

	return &Device{
		ctx:         ctx,
		dev:         dev,
		intf:        intf,
		releaseIntf: releaseIntf,
		ep:          ep,
		desc:        describeDevice(dev),
		chunkDelay:  100 * time.Millisecond,
	}, nil
}

func resolveDevice(descs []*gousb.DeviceDesc, selectors []DeviceSelector) (int, error) {
	if len(selectors) == 0 {
		return 0, nil
	}
	if len(selectors) != 1 {
		return 0, fmt.Errorf("open accepts at most one device selector")
	}
	if selectors[0] == nil {
		return 0, fmt.Errorf("device selector must not be nil")
	}
	return selectors[0].selectDevice(descs)
}

func outEndpoint(intf *gousb.Interface) (*gousb.OutEndpoint, error) {
	nums := make([]int, 0, len(intf.Setting.Endpoints))
	for _, ed := range intf.Setting.Endpoints {
		if ed.Direction == gousb.EndpointDirectionOut {
			nums = append(nums, ed.Number)
		}
	}
	if len(nums) == 0 {
		return nil, &TransportError{Reason: "no OUT endpoint on badge interface"}
	}
	sort.Ints(nums)
	ep, err := intf.OutEndpoint(nums[0])
	if err != nil {
		return nil, &TransportError{Reason: fmt.Sprintf("open OUT endpoint %d", nums[0]), Err: err}
	}
	return ep, nil
}

func describeDevice(dev *gousb.Device) string {
	manufacturer, err := dev.Manufacturer()
	if err != nil {
		manufacturer = "?"
	}
	product, err := dev.Product()
	if err != nil {
		product = "?"
	}
	return fmt.Sprintf("%s - %s (bus=%d addr=%d)", manufacturer, product, dev.Desc.Bus, dev.Desc.Address)
}

func closeAll(devs []*gousb.Device) {
	for _, d := range devs {
		if d != nil {
			d.Close()
		}
	}
}

// Description returns a human-readable summary of the opened badge.
func (d *Device) Description() string {
	return d.desc
}

// SetChunkDelay overrides the pause between chunk writes. The firmware
// drops data when chunks arrive faster than it drains them.
func (d *Device) SetChunkDelay(delay time.Duration) error {
	if delay < 0 {
		return fmt.Errorf("chunk delay must be >= 0")
	}
	d.chunkDelay = delay
	return nil
}

// Close releases the interface and the USB handles.
func (d *Device) Close() error {
	var firstErr error
	if d.releaseIntf != nil {
		d.releaseIntf()
		d.releaseIntf = nil
		d.intf = nil
		d.ep = nil
	}
	if d.dev != nil {
		if err := d.dev.Close(); err != nil {
			firstErr = err
		}
		d.dev = nil
	}
	if d.ctx != nil {
		if err := d.ctx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		d.ctx = nil
	}
	return firstErr
}

// Send builds the protocol buffer for msgs and writes it to the badge,
// stamping the header with the current time.
func (d *Device) Send(ctx context.Context, msgs []Message, brightness int) error {
	buf, err := BuildBuffer(msgs, brightness, time.Now())
	if err != nil {
		return err
	}
	return d.Write(ctx, buf)
}

// Write delivers a complete protocol buffer to the badge in 64-byte
// chunks, zero-padding the final chunk. The transfer either completes
// fully or fails with a TransportError; ctx cancellation is honoured
// between chunks.
func (d *Device) Write(ctx context.Context, buf []byte) error {
	if d.ep == nil {
		return &TransportError{Reason: "device is closed"}
	}
	if len(buf) > maxBufferSize {
		return &TransportError{Reason: fmt.Sprintf("buffer length %d exceeds device memory %d", len(buf), maxBufferSize)}
	}

	padded := padToChunks(buf)
	chunks := len(padded) / chunkSize
	for i := 0; i < chunks; i++ {
		if err := ctx.Err(); err != nil {
			return &TransportError{Reason: "write cancelled", Err: err}
		}
		chunk := padded[i*chunkSize : (i+1)*chunkSize]
		if _, err := d.ep.WriteContext(ctx, chunk); err != nil {
			return &TransportError{Reason: fmt.Sprintf("write chunk %d/%d", i+1, chunks), Err: err}
		}
		if d.chunkDelay > 0 && i < chunks-1 {
			time.Sleep(d.chunkDelay)
		}
	}
	return nil
}

// padToChunks copies buf and extends it with zeros to a multiple of the
// chunk size.
func padToChunks(buf []byte) []byte {
	n := len(buf)
	rem := n % chunkSize
	if rem != 0 {
		n += chunkSize - rem
	}
	out := make([]byte, n)
	copy(out, buf)
	return out
}
